package dto

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/LikithaGatta/PlatePlanner/model"
)

// ===== Request =====

type CreatePostReq struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Category string  `json:"category" validate:"required"`
	ParentID *string `json:"parentId,omitempty"` // hex id of the post being replied to
}

// UpdatePostReq is a partial update: nil fields keep their stored value.
type UpdatePostReq struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ===== Response =====

// ThreadedPost is a post plus its reply subtree, nested to arbitrary depth.
type ThreadedPost struct {
	model.Post
	Replies []*ThreadedPost `json:"replies"`
}

type LikesResponse struct {
	Likes []bson.ObjectID `json:"likes"`
}

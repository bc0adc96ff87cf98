package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Forum categories. Fixed set; there is no update path for a post's category.
const (
	CategoryRecipe   = "recipe"
	CategoryHealth   = "health"
	CategoryTips     = "tips"
	CategoryQuestion = "question"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryRecipe, CategoryHealth, CategoryTips, CategoryQuestion:
		return true
	}
	return false
}

// Post is a forum entry. A nil ParentID marks a top-level post; otherwise the
// post is a reply to the referenced post. AuthorName is a snapshot taken at
// creation and is not re-synced when the author renames.
type Post struct {
	ID         bson.ObjectID   `json:"id"         bson:"_id,omitempty"`
	AuthorID   bson.ObjectID   `json:"authorId"   bson:"author_id"`
	AuthorName string          `json:"authorName" bson:"author_name"`
	Title      string          `json:"title"      bson:"title"`
	Content    string          `json:"content"    bson:"content"`
	Category   string          `json:"category"   bson:"category"`
	Likes      []bson.ObjectID `json:"likes"      bson:"likes"`
	ParentID   *bson.ObjectID  `json:"parentId"   bson:"parent_id,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"  bson:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt"  bson:"updated_at"`
}

package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/LikithaGatta/PlatePlanner/dto"
	"github.com/LikithaGatta/PlatePlanner/internal/repository"
	"github.com/LikithaGatta/PlatePlanner/model"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidCategory = errors.New("invalid category")
)

// PostStore is the slice of the posts collection the forum service needs.
// *repository.PostRepository satisfies it; tests use an in-memory fake.
type PostStore interface {
	All(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	Insert(ctx context.Context, p *model.Post) error
	Save(ctx context.Context, p *model.Post) error
	DeleteByID(ctx context.Context, id bson.ObjectID) error
	PullLike(ctx context.Context, postID, userID bson.ObjectID) (*model.Post, error)
	AddLike(ctx context.Context, postID, userID bson.ObjectID) (*model.Post, error)
}

// UserLookup resolves requester identities for author-name snapshots.
type UserLookup interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
}

type ForumService struct {
	Posts PostStore
	Users UserLookup
}

func NewForumService(posts PostStore, users UserLookup) *ForumService {
	return &ForumService{Posts: posts, Users: users}
}

// ListPosts returns every top-level post with its reply subtree attached.
// One bulk fetch, then an in-memory group-by-parent; replies whose parent was
// deleted are unreachable from any root and drop out of the result.
func (s *ForumService) ListPosts(ctx context.Context) ([]*dto.ThreadedPost, error) {
	posts, err := s.Posts.All(ctx)
	if err != nil {
		return nil, err
	}
	return buildForest(posts), nil
}

// buildForest links a flat, created_at-ascending post list into a forest.
// Roots come out newest-first; each replies slice keeps the ascending fetch
// order, i.e. oldest reply first.
func buildForest(posts []model.Post) []*dto.ThreadedPost {
	nodes := make(map[bson.ObjectID]*dto.ThreadedPost, len(posts))
	for i := range posts {
		nodes[posts[i].ID] = &dto.ThreadedPost{
			Post:    posts[i],
			Replies: []*dto.ThreadedPost{},
		}
	}

	roots := []*dto.ThreadedPost{}
	for i := range posts {
		node := nodes[posts[i].ID]
		if posts[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*posts[i].ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
		// orphan: parent was deleted, the subtree stays detached
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	return roots
}

// CreatePost persists a new post or reply. The author name is snapshotted
// from the requester at call time; parentID is stored as given, without an
// existence check.
func (s *ForumService) CreatePost(ctx context.Context, requesterID bson.ObjectID, req dto.CreatePostReq) (*model.Post, error) {
	if !model.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	user, err := s.Users.FindByID(ctx, requesterID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var parentID *bson.ObjectID
	if req.ParentID != nil && *req.ParentID != "" {
		oid, err := bson.ObjectIDFromHex(*req.ParentID)
		if err != nil {
			return nil, ErrPostNotFound
		}
		parentID = &oid
	}

	now := time.Now().UTC()
	post := &model.Post{
		AuthorID:   requesterID,
		AuthorName: user.DisplayName(),
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Likes:      []bson.ObjectID{},
		ParentID:   parentID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost applies the supplied fields only; nil fields keep their value.
// Category and parent are not editable. Owner only.
func (s *ForumService) EditPost(ctx context.Context, requesterID, postID bson.ObjectID, req dto.UpdatePostReq) (*model.Post, error) {
	post, err := s.Posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.Posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes exactly the targeted post. Replies are not cascaded;
// they dangle and disappear from the listing. Owner only.
func (s *ForumService) DeletePost(ctx context.Context, requesterID, postID bson.ObjectID) error {
	post, err := s.Posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return ErrForbidden
	}

	err = s.Posts.DeleteByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		// removed concurrently; the outcome the caller asked for
		return nil
	}
	return err
}

// ToggleLike flips the requester's membership in the post's like set and
// returns the resulting set. Both branches are single atomic document
// updates, so concurrent toggles cannot lose each other's writes.
func (s *ForumService) ToggleLike(ctx context.Context, requesterID, postID bson.ObjectID) ([]bson.ObjectID, error) {
	post, err := s.Posts.PullLike(ctx, postID, requesterID)
	if err == nil {
		return likesOrEmpty(post), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// not currently liked (or no such post): try to add
	post, err = s.Posts.AddLike(ctx, postID, requesterID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return likesOrEmpty(post), nil
}

// likesOrEmpty keeps the wire shape an array even when the set drained.
func likesOrEmpty(p *model.Post) []bson.ObjectID {
	if p.Likes == nil {
		return []bson.ObjectID{}
	}
	return p.Likes
}

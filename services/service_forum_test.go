package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/LikithaGatta/PlatePlanner/dto"
	"github.com/LikithaGatta/PlatePlanner/internal/repository"
	"github.com/LikithaGatta/PlatePlanner/model"
)

// memPostStore mimics the posts collection: value-copy semantics, created_at
// ascending All(), atomic-style like updates.
type memPostStore struct {
	seq   int
	order map[bson.ObjectID]int
	posts map[bson.ObjectID]model.Post
}

func newMemPostStore() *memPostStore {
	return &memPostStore{
		order: map[bson.ObjectID]int{},
		posts: map[bson.ObjectID]model.Post{},
	}
}

func (s *memPostStore) All(ctx context.Context) ([]model.Post, error) {
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return s.order[out[i].ID] < s.order[out[j].ID]
	})
	return out, nil
}

func (s *memPostStore) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *memPostStore) Insert(ctx context.Context, p *model.Post) error {
	p.ID = bson.NewObjectID()
	s.seq++
	s.order[p.ID] = s.seq
	s.posts[p.ID] = *p
	return nil
}

func (s *memPostStore) Save(ctx context.Context, p *model.Post) error {
	if _, ok := s.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	s.posts[p.ID] = *p
	return nil
}

func (s *memPostStore) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *memPostStore) PullLike(ctx context.Context, postID, userID bson.ObjectID) (*model.Post, error) {
	p, ok := s.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i, l := range p.Likes {
		if l == userID {
			p.Likes = append(append([]bson.ObjectID{}, p.Likes[:i]...), p.Likes[i+1:]...)
			s.posts[postID] = p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memPostStore) AddLike(ctx context.Context, postID, userID bson.ObjectID) (*model.Post, error) {
	p, ok := s.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, l := range p.Likes {
		if l == userID {
			return &p, nil
		}
	}
	p.Likes = append(append([]bson.ObjectID{}, p.Likes...), userID)
	s.posts[postID] = p
	return &p, nil
}

type memUsers struct {
	users map[bson.ObjectID]model.User
}

func (s *memUsers) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func newForumFixture() (*ForumService, *memPostStore, bson.ObjectID, bson.ObjectID) {
	posts := newMemPostStore()
	u1 := bson.NewObjectID()
	u2 := bson.NewObjectID()
	users := &memUsers{users: map[bson.ObjectID]model.User{
		u1: {ID: u1, Name: "Alice", Email: "alice@example.com"},
		u2: {ID: u2, Email: "bob@example.com"}, // no display name set
	}}
	return NewForumService(posts, users), posts, u1, u2
}

// seedPost inserts a post with a controlled timestamp, bypassing the service.
func seedPost(t *testing.T, store *memPostStore, author bson.ObjectID, title string, parent *bson.ObjectID, at time.Time) bson.ObjectID {
	t.Helper()
	p := &model.Post{
		AuthorID:   author,
		AuthorName: "seed",
		Title:      title,
		Content:    "body of " + title,
		Category:   model.CategoryTips,
		Likes:      []bson.ObjectID{},
		ParentID:   parent,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	require.NoError(t, store.Insert(context.Background(), p))
	return p.ID
}

func TestListPosts_NestingAndOrdering(t *testing.T) {
	svc, store, u1, _ := newForumFixture()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	oldRoot := seedPost(t, store, u1, "old root", nil, base)
	reply1 := seedPost(t, store, u1, "first reply", &oldRoot, base.Add(1*time.Minute))
	newRoot := seedPost(t, store, u1, "new root", nil, base.Add(2*time.Minute))
	reply2 := seedPost(t, store, u1, "second reply", &oldRoot, base.Add(3*time.Minute))
	nested := seedPost(t, store, u1, "nested reply", &reply1, base.Add(4*time.Minute))

	forest, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, forest, 2)

	// roots newest first
	assert.Equal(t, newRoot, forest[0].ID)
	assert.Equal(t, oldRoot, forest[1].ID)
	assert.Empty(t, forest[0].Replies)

	// replies oldest first, nested to depth
	replies := forest[1].Replies
	require.Len(t, replies, 2)
	assert.Equal(t, reply1, replies[0].ID)
	assert.Equal(t, reply2, replies[1].ID)
	require.Len(t, replies[0].Replies, 1)
	assert.Equal(t, nested, replies[0].Replies[0].ID)
	assert.Empty(t, replies[1].Replies)
}

func TestListPosts_OrphansExcluded(t *testing.T) {
	svc, store, u1, _ := newForumFixture()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	root := seedPost(t, store, u1, "root", nil, base)
	missing := bson.NewObjectID()
	orphan := seedPost(t, store, u1, "orphan", &missing, base.Add(time.Minute))
	// child of the orphan: unreachable too
	seedPost(t, store, u1, "orphan child", &orphan, base.Add(2*time.Minute))

	forest, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, root, forest[0].ID)
	assert.Empty(t, forest[0].Replies)
}

func TestCreatePost(t *testing.T) {
	svc, _, u1, u2 := newForumFixture()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, u1, dto.CreatePostReq{
		Title:    "Hello",
		Content:  "first post",
		Category: model.CategoryRecipe,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", post.AuthorName)
	assert.Equal(t, u1, post.AuthorID)
	assert.Nil(t, post.ParentID)
	assert.NotNil(t, post.Likes)
	assert.Empty(t, post.Likes)
	assert.False(t, post.CreatedAt.IsZero())

	// author name falls back to email when no name is set
	post2, err := svc.CreatePost(ctx, u2, dto.CreatePostReq{
		Title:    "Hi",
		Content:  "me too",
		Category: model.CategoryQuestion,
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", post2.AuthorName)
}

func TestCreatePost_UnknownRequester(t *testing.T) {
	svc, _, _, _ := newForumFixture()

	_, err := svc.CreatePost(context.Background(), bson.NewObjectID(), dto.CreatePostReq{
		Title:    "x",
		Content:  "y",
		Category: model.CategoryTips,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreatePost_InvalidCategory(t *testing.T) {
	svc, _, u1, _ := newForumFixture()

	_, err := svc.CreatePost(context.Background(), u1, dto.CreatePostReq{
		Title:    "x",
		Content:  "y",
		Category: "gossip",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreatePost_ParentStoredUnverified(t *testing.T) {
	svc, _, u1, _ := newForumFixture()

	// a parent id that references nothing is stored as-is
	ghost := bson.NewObjectID().Hex()
	post, err := svc.CreatePost(context.Background(), u1, dto.CreatePostReq{
		Title:    "reply into the void",
		Content:  "anyone there?",
		Category: model.CategoryQuestion,
		ParentID: &ghost,
	})
	require.NoError(t, err)
	require.NotNil(t, post.ParentID)
	assert.Equal(t, ghost, post.ParentID.Hex())
}

func TestEditPost_PartialUpdate(t *testing.T) {
	svc, store, u1, _ := newForumFixture()
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	id := seedPost(t, store, u1, "original title", nil, created)

	newTitle := "edited title"
	post, err := svc.EditPost(ctx, u1, id, dto.UpdatePostReq{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "edited title", post.Title)
	assert.Equal(t, "body of original title", post.Content)
	assert.True(t, post.UpdatedAt.After(created))
	assert.Equal(t, created, post.CreatedAt)
}

func TestEditPost_Forbidden(t *testing.T) {
	svc, store, u1, u2 := newForumFixture()
	ctx := context.Background()

	id := seedPost(t, store, u1, "mine", nil, time.Now().UTC())

	newTitle := "hijacked"
	_, err := svc.EditPost(ctx, u2, id, dto.UpdatePostReq{Title: &newTitle})
	assert.ErrorIs(t, err, ErrForbidden)

	// post untouched
	stored, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "mine", stored.Title)
}

func TestEditPost_NotFound(t *testing.T) {
	svc, _, u1, _ := newForumFixture()

	title := "x"
	_, err := svc.EditPost(context.Background(), u1, bson.NewObjectID(), dto.UpdatePostReq{Title: &title})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost_Scenario(t *testing.T) {
	svc, store, u1, u2 := newForumFixture()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// U1 posts A, U2 replies with B
	a := seedPost(t, store, u1, "A", nil, base)
	b := seedPost(t, store, u2, "B", &a, base.Add(time.Minute))

	forest, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Replies, 1)
	assert.Equal(t, b, forest[0].Replies[0].ID)

	// U2 cannot delete A
	err = svc.DeletePost(ctx, u2, a)
	assert.ErrorIs(t, err, ErrForbidden)

	// U1 can; B becomes an orphan and drops out of the listing
	require.NoError(t, svc.DeletePost(ctx, u1, a))

	forest, err = svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, forest)

	// B itself still exists in the store
	_, err = store.FindByID(ctx, b)
	assert.NoError(t, err)
}

func TestDeletePost_NotFound(t *testing.T) {
	svc, _, u1, _ := newForumFixture()

	err := svc.DeletePost(context.Background(), u1, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleLike(t *testing.T) {
	svc, store, u1, u2 := newForumFixture()
	ctx := context.Background()

	id := seedPost(t, store, u1, "likeable", nil, time.Now().UTC())

	// first toggle adds
	likes, err := svc.ToggleLike(ctx, u2, id)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{u2}, likes)

	// liking your own post is allowed
	likes, err = svc.ToggleLike(ctx, u1, id)
	require.NoError(t, err)
	assert.Len(t, likes, 2)

	// second toggle by the same user removes only that user
	likes, err = svc.ToggleLike(ctx, u2, id)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{u1}, likes)

	// back to empty
	likes, err = svc.ToggleLike(ctx, u1, id)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestToggleLike_PostMissing(t *testing.T) {
	svc, _, u1, _ := newForumFixture()

	_, err := svc.ToggleLike(context.Background(), u1, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

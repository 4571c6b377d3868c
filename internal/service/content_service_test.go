package service

import (
	"context"
	"testing"
	"time"

	"Social_Forum/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) CreateAndFetch(ctx context.Context, post *model.Post) (*model.PostView, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostView), args.Error(1)
}

func (m *MockPostStore) List(ctx context.Context) ([]model.PostView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostView), args.Error(1)
}

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) CreateWithAuthor(ctx context.Context, c *model.Comment) (*model.CommentView, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentView), args.Error(1)
}

func (m *MockCommentStore) ListByPost(ctx context.Context, postID uint64) ([]model.CommentView, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentView), args.Error(1)
}

type MockReplyStore struct {
	mock.Mock
}

func (m *MockReplyStore) Create(ctx context.Context, r *model.Reply) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReplyStore) ListByComment(ctx context.Context, commentID uint64) ([]model.ReplyView, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReplyView), args.Error(1)
}

var (
	_ PostStore    = (*MockPostStore)(nil)
	_ CommentStore = (*MockCommentStore)(nil)
	_ ReplyStore   = (*MockReplyStore)(nil)
)

func TestPostService_CreatePost(t *testing.T) {
	repo := new(MockPostStore)
	pub := &recordingPublisher{}
	svc := NewPostService(repo, NewEmitter(pub, nil))
	ctx := context.Background()

	view := &model.PostView{PostID: 11, Title: "T", Content: "C", Username: "alice", CreatedAt: time.Now()}
	repo.On("CreateAndFetch", ctx, mock.MatchedBy(func(p *model.Post) bool {
		return p.UserID == 3 && p.Title == "T" && p.Content == "C"
	})).Return(view, nil)

	got, err := svc.CreatePost(ctx, 3, "T", "C")
	require.NoError(t, err)
	assert.Equal(t, view, got)

	evt := requireOneEvent(t, pub)
	assert.Equal(t, EventPostCreated, evt.Type)
	assert.Equal(t, uint64(11), evt.PostID)
	assert.Equal(t, uint64(3), evt.UserID)
	repo.AssertExpectations(t)
}

func TestPostService_CreatePostError(t *testing.T) {
	repo := new(MockPostStore)
	pub := &recordingPublisher{}
	svc := NewPostService(repo, NewEmitter(pub, nil))
	ctx := context.Background()

	repo.On("CreateAndFetch", ctx, mock.Anything).Return(nil, errStore)

	_, err := svc.CreatePost(ctx, 1, "T", "C")
	assert.ErrorIs(t, err, errStore)
	assert.Empty(t, pub.types())
}

func TestPostService_ListPosts(t *testing.T) {
	repo := new(MockPostStore)
	svc := NewPostService(repo, nil)
	ctx := context.Background()

	posts := []model.PostView{{PostID: 2}, {PostID: 1}}
	repo.On("List", ctx).Return(posts, nil)

	got, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestCommentService_CreateComment(t *testing.T) {
	repo := new(MockCommentStore)
	pub := &recordingPublisher{}
	svc := NewCommentService(repo, NewEmitter(pub, nil))
	ctx := context.Background()

	view := &model.CommentView{CommentID: 4, PostID: 1, Content: "hi", Username: "bob"}
	repo.On("CreateWithAuthor", ctx, &model.Comment{PostID: 1, UserID: 2, Content: "hi"}).Return(view, nil)

	got, err := svc.CreateComment(ctx, 1, 2, "hi")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	evt := requireOneEvent(t, pub)
	assert.Equal(t, EventCommentCreated, evt.Type)
	assert.Equal(t, uint64(4), evt.CommentID)
}

func TestCommentService_ListCommentsEmpty(t *testing.T) {
	repo := new(MockCommentStore)
	svc := NewCommentService(repo, nil)
	ctx := context.Background()

	repo.On("ListByPost", ctx, uint64(8)).Return(nil, nil)

	got, err := svc.ListComments(ctx, 8)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCommentService_ListCommentsError(t *testing.T) {
	repo := new(MockCommentStore)
	svc := NewCommentService(repo, nil)
	ctx := context.Background()

	repo.On("ListByPost", ctx, uint64(8)).Return(nil, errStore)

	_, err := svc.ListComments(ctx, 8)
	assert.ErrorIs(t, err, errStore)
}

func TestReplyService_CreateReply(t *testing.T) {
	repo := new(MockReplyStore)
	pub := &recordingPublisher{}
	svc := NewReplyService(repo, NewEmitter(pub, nil))
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*model.Reply")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*model.Reply)
			r.ID = 21
			r.CreatedAt = time.Now()
		}).
		Return(nil)

	reply, err := svc.CreateReply(ctx, 5, 6, "thanks")
	require.NoError(t, err)
	assert.Equal(t, uint64(21), reply.ID)
	assert.Equal(t, uint64(5), reply.CommentID)
	assert.Equal(t, uint64(6), reply.UserID)
	assert.Equal(t, "thanks", reply.Content)

	evt := requireOneEvent(t, pub)
	assert.Equal(t, EventReplyCreated, evt.Type)
	assert.Equal(t, uint64(21), evt.ReplyID)
	assert.Equal(t, []string{"5"}, pub.keys)
}

func TestReplyService_CreateReplyError(t *testing.T) {
	repo := new(MockReplyStore)
	svc := NewReplyService(repo, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(errStore)

	_, err := svc.CreateReply(ctx, 5, 6, "x")
	assert.ErrorIs(t, err, errStore)
}

func TestReplyService_ListReplies(t *testing.T) {
	repo := new(MockReplyStore)
	svc := NewReplyService(repo, nil)
	ctx := context.Background()

	replies := []model.ReplyView{{ReplyID: 1}, {ReplyID: 2}}
	repo.On("ListByComment", ctx, uint64(5)).Return(replies, nil)

	got, err := svc.ListReplies(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, replies, got)
}

package service

import (
	"context"
	"fmt"

	"Social_Forum/internal/model"
)

type PostStore interface {
	CreateAndFetch(ctx context.Context, post *model.Post) (*model.PostView, error)
	List(ctx context.Context) ([]model.PostView, error)
}

type PostService struct {
	repo   PostStore
	events *Emitter
}

func NewPostService(repo PostStore, events *Emitter) *PostService {
	return &PostService{repo: repo, events: events}
}

// CreatePost 返回连表作者名后的完整帖子
func (s *PostService) CreatePost(ctx context.Context, userID uint64, title, content string) (*model.PostView, error) {
	view, err := s.repo.CreateAndFetch(ctx, &model.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.events.Emit(ctx, Event{Type: EventPostCreated, PostID: view.PostID, UserID: userID})
	return view, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]model.PostView, error) {
	return s.repo.List(ctx)
}

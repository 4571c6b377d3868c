package service

import (
	"context"
	"fmt"

	"Social_Forum/internal/model"
)

type CommentStore interface {
	CreateWithAuthor(ctx context.Context, comment *model.Comment) (*model.CommentView, error)
	ListByPost(ctx context.Context, postID uint64) ([]model.CommentView, error)
}

type CommentService struct {
	repo   CommentStore
	events *Emitter
}

func NewCommentService(repo CommentStore, events *Emitter) *CommentService {
	return &CommentService{repo: repo, events: events}
}

func (s *CommentService) CreateComment(ctx context.Context, postID, userID uint64, content string) (*model.CommentView, error) {
	view, err := s.repo.CreateWithAuthor(ctx, &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.events.Emit(ctx, Event{Type: EventCommentCreated, PostID: postID, CommentID: view.CommentID, UserID: userID})
	return view, nil
}

// ListComments 没有评论时返回空切片
func (s *CommentService) ListComments(ctx context.Context, postID uint64) ([]model.CommentView, error) {
	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.CommentView{}
	}
	return list, nil
}

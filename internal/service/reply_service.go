package service

import (
	"context"
	"fmt"

	"Social_Forum/internal/model"
)

type ReplyStore interface {
	Create(ctx context.Context, reply *model.Reply) error
	ListByComment(ctx context.Context, commentID uint64) ([]model.ReplyView, error)
}

type ReplyService struct {
	repo   ReplyStore
	events *Emitter
}

func NewReplyService(repo ReplyStore, events *Emitter) *ReplyService {
	return &ReplyService{repo: repo, events: events}
}

// CreateReply 直接返回写入的字段，不回查作者名
func (s *ReplyService) CreateReply(ctx context.Context, commentID, userID uint64, content string) (*model.Reply, error) {
	reply := &model.Reply{
		CommentID: commentID,
		UserID:    userID,
		Content:   content,
	}
	if err := s.repo.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	s.events.Emit(ctx, Event{Type: EventReplyCreated, CommentID: commentID, ReplyID: reply.ID, UserID: userID})
	return reply, nil
}

func (s *ReplyService) ListReplies(ctx context.Context, commentID uint64) ([]model.ReplyView, error) {
	list, err := s.repo.ListByComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.ReplyView{}
	}
	return list, nil
}

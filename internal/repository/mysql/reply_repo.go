package mysql

import (
	"context"

	"Social_Forum/internal/model"

	"gorm.io/gorm"
)

type ReplyRepository struct {
	DB *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{DB: db}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *model.Reply) error {
	return r.DB.WithContext(ctx).Create(reply).Error
}

// ListByComment 回复按时间正序，与帖子、评论相反
func (r *ReplyRepository) ListByComment(ctx context.Context, commentID uint64) ([]model.ReplyView, error) {
	list := make([]model.ReplyView, 0)
	err := r.DB.WithContext(ctx).
		Table("replies r").
		Select("r.reply_id, r.content, r.created_at, u.username").
		Joins("JOIN users u ON r.user_id = u.user_id").
		Where("r.comment_id = ?", commentID).
		Order("r.created_at ASC, r.reply_id ASC").
		Scan(&list).Error
	return list, err
}

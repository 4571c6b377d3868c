package mysql

import (
	"context"

	"Social_Forum/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

// CreateWithAuthor 写入评论并查出作者名
func (r *CommentRepository) CreateWithAuthor(ctx context.Context, comment *model.Comment) (*model.CommentView, error) {
	var author model.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Select("username").Where("user_id = ?", comment.UserID).Take(&author).Error
	})
	if err != nil {
		return nil, err
	}
	return &model.CommentView{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Username:  author.Username,
	}, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uint64) ([]model.CommentView, error) {
	list := make([]model.CommentView, 0)
	err := r.DB.WithContext(ctx).
		Table("comments c").
		Select("c.comment_id, c.content, c.created_at, u.username").
		Joins("JOIN users u ON c.user_id = u.user_id").
		Where("c.post_id = ?", postID).
		Order("c.created_at DESC, c.comment_id DESC").
		Scan(&list).Error
	return list, err
}

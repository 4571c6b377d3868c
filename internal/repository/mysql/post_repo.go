package mysql

import (
	"context"

	"Social_Forum/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func postViews(db *gorm.DB) *gorm.DB {
	return db.Table("posts p").
		Select("p.post_id, p.title, p.content, p.created_at, u.username").
		Joins("JOIN users u ON p.user_id = u.user_id")
}

// CreateAndFetch 插入后在同一事务内连表回读，保证返回的记录就是刚写入的那一行
func (r *PostRepository) CreateAndFetch(ctx context.Context, post *model.Post) (*model.PostView, error) {
	var view model.PostView
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return postViews(tx).Where("p.post_id = ?", post.ID).Take(&view).Error
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// List 按创建时间倒序，同一时间点用 id 打破并列
func (r *PostRepository) List(ctx context.Context) ([]model.PostView, error) {
	list := make([]model.PostView, 0)
	err := postViews(r.DB.WithContext(ctx)).
		Order("p.created_at DESC, p.post_id DESC").
		Scan(&list).Error
	return list, err
}

package mysql

import (
	"context"

	"Social_Forum/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

// Toggle 先删后插：删到行即取消点赞；否则幂等插入。
// 两条语句各自原子，联合主键保证并发下 (post_id, user_id) 至多一行。
func (r *LikeRepository) Toggle(ctx context.Context, postID, userID uint64) (liked bool, err error) {
	res := r.DB.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	// 并发请求先插入时这里 DoNothing，结果仍是“已点赞”
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.Like{PostID: postID, UserID: userID}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *LikeRepository) Count(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

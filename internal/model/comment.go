package model

import "time"

type Comment struct {
	ID        uint64    `gorm:"column:comment_id;primaryKey"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_comments_post_time,priority:1"`
	UserID    uint64    `gorm:"column:user_id;not null"`
	Content   string    `gorm:"column:content;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_comments_post_time,priority:2"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentView 评论及作者名；PostID 只在创建时填充，由创建接口单独输出
type CommentView struct {
	CommentID uint64    `json:"comment_id"`
	PostID    uint64    `json:"-" gorm:"-"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

package model

import "time"

type Post struct {
	ID        uint64    `gorm:"column:post_id;primaryKey"`
	UserID    uint64    `gorm:"column:user_id;not null;index"`
	Title     string    `gorm:"column:title;size:200;not null"`
	Content   string    `gorm:"column:content;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_posts_created"`
}

func (Post) TableName() string {
	return "posts"
}

// PostView 帖子连表作者名后的结果
type PostView struct {
	PostID    uint64    `json:"post_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

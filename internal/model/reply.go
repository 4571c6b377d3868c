package model

import "time"

type Reply struct {
	ID        uint64    `gorm:"column:reply_id;primaryKey" json:"reply_id"`
	CommentID uint64    `gorm:"column:comment_id;not null;index:idx_replies_comment_time,priority:1" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_replies_comment_time,priority:2" json:"created_at"`
}

func (Reply) TableName() string {
	return "replies"
}

type ReplyView struct {
	ReplyID   uint64    `json:"reply_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

package model

type User struct {
	ID       uint64 `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username string `gorm:"column:username;uniqueIndex;size:32;not null" json:"username"`
	Password string `gorm:"column:password;size:255;not null" json:"password,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Redacted 返回去掉密码哈希的副本
func (u User) Redacted() User {
	u.Password = ""
	return u
}

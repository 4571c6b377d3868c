package model

// Like 只表示存在性：(post_id, user_id) 联合主键保证同一用户对同一帖子至多一行
type Like struct {
	PostID uint64 `gorm:"column:post_id;primaryKey;autoIncrement:false"`
	UserID uint64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
}

func (Like) TableName() string {
	return "likes"
}

// All 迁移时按依赖顺序使用
func All() []any {
	return []any{&User{}, &Post{}, &Comment{}, &Reply{}, &Like{}}
}

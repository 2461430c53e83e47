package like

import "time"

// Like is existence-only: one row per (comment, user) pair.
type Like struct {
	CommentID uint      `gorm:"column:comment_id;primaryKey;autoIncrement:false" json:"comment_id"`
	UserID    uint      `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

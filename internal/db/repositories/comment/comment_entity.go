package comment

import "time"

const MaxContentLength = 100

type Comment struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ParentID  *uint     `gorm:"column:parent_id;index:idx_comments_parent_created,priority:1" json:"parent_id"`
	Content   string    `gorm:"column:content;type:varchar(100);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_comments_parent_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentView is a comment row joined with its author and the fields derived
// relative to the viewer.
type CommentView struct {
	ID          uint      `gorm:"column:id" json:"id"`
	ParentID    *uint     `gorm:"column:parent_id" json:"parent_id"`
	Content     string    `gorm:"column:content" json:"content"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
	DisplayName string    `gorm:"column:display_name" json:"display_name"`
	PictureURL  string    `gorm:"column:picture_url" json:"picture_url"`
	LikeCount   int64     `gorm:"column:like_count" json:"like_count"`
	ReplyCount  int64     `gorm:"column:reply_count" json:"reply_count"`
	IsLiked     bool      `gorm:"column:is_liked" json:"is_liked"`
	IsOwner     bool      `gorm:"column:is_owner" json:"is_owner"`
	IsEdited    bool      `gorm:"column:is_edited" json:"is_edited"`
}

// Order selects the ordering of a top-level listing.
type Order int

const (
	OrderNewest Order = iota
	OrderTop
)

func (o Order) clause() string {
	if o == OrderTop {
		return "like_count DESC, c.created_at DESC"
	}
	return "c.created_at DESC"
}

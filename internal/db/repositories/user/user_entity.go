package user

import "time"

type User struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LineUserID  string    `gorm:"column:line_user_id;type:text;not null;uniqueIndex" json:"line_user_id"`
	DisplayName string    `gorm:"column:display_name;type:text;not null" json:"display_name"`
	PictureURL  string    `gorm:"column:picture_url;type:text;not null" json:"picture_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

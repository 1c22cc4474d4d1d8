package model

import "time"

// Post 动态帖子，可选挂到某个社区
type Post struct {
	Id          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	UserId      string    `gorm:"column:user_id;type:varchar(36);index;not null"`
	Content     string    `gorm:"column:content;type:text;not null"`
	CommunityId string    `gorm:"column:community_id;type:varchar(36)"`
	CreatedAt   time.Time `gorm:"column:created_at;index;autoCreateTime"`
}

func (Post) TableName() string {
	return "posts"
}

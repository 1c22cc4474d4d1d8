package model

import "time"

// CommunityMessage 社区消息
type CommunityMessage struct {
	Id          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	CommunityId string    `gorm:"column:community_id;type:varchar(36);index;not null"`
	UserId      string    `gorm:"column:user_id;type:varchar(36);not null"`
	Content     string    `gorm:"column:content;type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CommunityMessage) TableName() string {
	return "community_messages"
}

package model

import "time"

// PrivateMessage 私信，支持匿名发送（匿名时携带临时昵称/头像）
type PrivateMessage struct {
	Id              string    `gorm:"column:id;type:varchar(36);primaryKey"`
	SenderId        string    `gorm:"column:sender_id;type:varchar(36);index;not null"`
	ReceiverId      string    `gorm:"column:receiver_id;type:varchar(36);index;not null"`
	Content         string    `gorm:"column:content;type:text;not null"`
	IsAnonymous     bool      `gorm:"column:is_anonymous;default:false"`
	AnonymousAvatar string    `gorm:"column:anonymous_avatar;type:text"`
	AnonymousName   string    `gorm:"column:anonymous_name;type:varchar(100)"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PrivateMessage) TableName() string {
	return "private_messages"
}

package model

import "time"

// LoveMessage LOVE 聊天内的消息
type LoveMessage struct {
	Id         string    `gorm:"column:id;type:varchar(36);primaryKey"`
	LoveChatId string    `gorm:"column:love_chat_id;type:varchar(36);index;not null"`
	SenderId   string    `gorm:"column:sender_id;type:varchar(36);not null"`
	Content    string    `gorm:"column:content;type:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (LoveMessage) TableName() string {
	return "love_messages"
}

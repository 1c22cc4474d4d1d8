package model

import "time"

// LoveChat 双人 LOVE 聊天
type LoveChat struct {
	Id        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	User1Id   string    `gorm:"column:user1_id;type:varchar(36);not null"`
	User2Id   string    `gorm:"column:user2_id;type:varchar(36);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (LoveChat) TableName() string {
	return "love_chats"
}

package respond

import "time"

// LoveChatRespond 双人 LOVE 聊天
type LoveChatRespond struct {
	Id        string    `json:"id"`
	User1Id   string    `json:"user1_id"`
	User2Id   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoveMessageRespond 聊天内的一条消息
type LoveMessageRespond struct {
	Id         string    `json:"id"`
	LoveChatId string    `json:"love_chat_id"`
	SenderId   string    `json:"sender_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

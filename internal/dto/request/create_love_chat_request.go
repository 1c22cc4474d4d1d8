package request

// CreateLoveChatRequest 创建 LOVE 聊天请求
type CreateLoveChatRequest struct {
	User1Id string `json:"user1Id" binding:"required"`
	User2Id string `json:"user2Id" binding:"required"`
}

// LoveMessageRequest 发送 LOVE 聊天消息请求
type LoveMessageRequest struct {
	SenderId string `json:"senderId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

package request

// PrivateMessageRequest 发送私信请求，支持匿名字段
type PrivateMessageRequest struct {
	SenderId        string `json:"senderId" binding:"required"`
	ReceiverId      string `json:"receiverId" binding:"required"`
	Content         string `json:"content" binding:"required"`
	IsAnonymous     bool   `json:"isAnonymous"`
	AnonymousAvatar string `json:"anonymousAvatar"`
	AnonymousName   string `json:"anonymousName"`
}

package request

// CommunityMessageRequest 发送社区消息请求
type CommunityMessageRequest struct {
	UserId  string `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

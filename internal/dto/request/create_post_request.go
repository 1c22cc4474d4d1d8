package request

// CreatePostRequest 创建帖子请求
type CreatePostRequest struct {
	UserId      string `json:"userId" binding:"required"`
	Content     string `json:"content" binding:"required"`
	CommunityId string `json:"communityId"`
}

package request

// CreateCommunityRequest 创建社区请求
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
	CreatedBy   string `json:"createdBy" binding:"required"`
}

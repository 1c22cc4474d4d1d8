package request

// MuteMemberRequest 禁言请求：AdminId 为操作者，UserId 为被禁言成员
type MuteMemberRequest struct {
	UserId  string `json:"userId" binding:"required"`
	AdminId string `json:"adminId" binding:"required"`
	Reason  string `json:"reason"`
}

// UnmuteMemberRequest 解除禁言请求
type UnmuteMemberRequest struct {
	UserId  string `json:"userId" binding:"required"`
	AdminId string `json:"adminId" binding:"required"`
}

package request

// UpdateAvatarRequest 更新头像请求
type UpdateAvatarRequest struct {
	AvatarUrl string `json:"avatarUrl" binding:"required"`
}

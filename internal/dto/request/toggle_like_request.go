package request

// ToggleLikeRequest 点赞/取消点赞请求（toggle 语义）
type ToggleLikeRequest struct {
	UserId string `json:"userId" binding:"required"`
}

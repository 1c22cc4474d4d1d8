package request

// JoinCommunityRequest 加入社区请求
type JoinCommunityRequest struct {
	UserId string `json:"userId" binding:"required"`
}

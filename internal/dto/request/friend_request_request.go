package request

// FriendRequestRequest 发送好友请求
type FriendRequestRequest struct {
	UserId   string `json:"userId" binding:"required"`
	FriendId string `json:"friendId" binding:"required"`
}

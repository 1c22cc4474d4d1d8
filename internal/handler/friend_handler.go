package handler

import (
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendHandler 用户搜索与好友请求处理器
type FriendHandler struct {
	svc service.FriendService
}

// NewFriendHandler 构造函数
func NewFriendHandler(svc service.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

// Search 按名字搜索用户
// GET /api/friends/search?query
// 成功: { success, users }
func (h *FriendHandler) Search(c *gin.Context) {
	users, err := h.svc.Search(c.Query("query"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"users": users})
}

// SendRequest 发送好友请求
// POST /api/friends/request
// 成功: { success, message }
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var req request.FriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := h.svc.SendRequest(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": "Запрос в друзья отправлен"})
}

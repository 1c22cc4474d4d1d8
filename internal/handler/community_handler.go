// Package handler 提供 HTTP 请求处理器
// 本文件处理社区相关的 API 请求，包括禁言管理
package handler

import (
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunityHandler 社区请求处理器
type CommunityHandler struct {
	svc service.CommunityService
}

// NewCommunityHandler 构造函数
func NewCommunityHandler(svc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

// Create 创建社区
// POST /api/communities
// 成功: { success, community }
func (h *CommunityHandler) Create(c *gin.Context) {
	var req request.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	community, err := h.svc.Create(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"community": community})
}

// Join 加入社区
// POST /api/communities/:id/join
// 成功: { success, message }
func (h *CommunityHandler) Join(c *gin.Context) {
	var req request.JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := h.svc.Join(c.Param("id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": "Вы вступили в сообщество"})
}

// Search 搜索社区
// GET /api/communities/search?query&type
// 成功: { success, communities }
func (h *CommunityHandler) Search(c *gin.Context) {
	communities, err := h.svc.Search(c.Query("query"), c.Query("type"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"communities": communities})
}

// Messages 取社区消息列表
// GET /api/communities/:id/messages
// 成功: { success, messages }
func (h *CommunityHandler) Messages(c *gin.Context) {
	messages, err := h.svc.Messages(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"messages": messages})
}

// SendMessage 发送社区消息，被禁言成员得到 403
// POST /api/communities/:id/messages
// 成功: { success, message }
func (h *CommunityHandler) SendMessage(c *gin.Context) {
	var req request.CommunityMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	msg, err := h.svc.SendMessage(c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": msg})
}

// Mute 禁言成员
// POST /api/communities/:id/mute
// 成功: { success, message }
func (h *CommunityHandler) Mute(c *gin.Context) {
	var req request.MuteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := h.svc.Mute(c.Param("id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": "Пользователь заглушен"})
}

// Unmute 解除禁言
// POST /api/communities/:id/unmute
// 成功: { success, message }
func (h *CommunityHandler) Unmute(c *gin.Context) {
	var req request.UnmuteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := h.svc.Unmute(c.Param("id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": "Заглушение снято"})
}

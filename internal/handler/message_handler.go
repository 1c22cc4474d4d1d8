// Package handler 提供 HTTP 请求处理器
// 本文件处理私信与 LOVE 聊天相关的 API 请求
package handler

import (
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler 私信与 LOVE 聊天请求处理器
type MessageHandler struct {
	svc service.MessageService
}

// NewMessageHandler 构造函数
func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SendPrivate 发送私信
// POST /api/messages/send
// 成功: { success, message }
func (h *MessageHandler) SendPrivate(c *gin.Context) {
	var req request.PrivateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	msg, err := h.svc.SendPrivate(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": msg})
}

// History 取两个用户之间的私信历史
// GET /api/messages/history?userId&peerId
// 成功: { success, messages }
func (h *MessageHandler) History(c *gin.Context) {
	messages, err := h.svc.Conversation(c.Query("userId"), c.Query("peerId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"messages": messages})
}

// CreateLoveChat 创建双人 LOVE 聊天
// POST /api/love/create
// 成功: { success, chat }
func (h *MessageHandler) CreateLoveChat(c *gin.Context) {
	var req request.CreateLoveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	chat, err := h.svc.CreateLoveChat(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"chat": chat})
}

// SendLoveMessage 在聊天内发消息
// POST /api/love/:id/messages
// 成功: { success, message }
func (h *MessageHandler) SendLoveMessage(c *gin.Context) {
	var req request.LoveMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	msg, err := h.svc.SendLoveMessage(c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": msg})
}

// LoveMessages 取聊天消息列表
// GET /api/love/:id/messages
// 成功: { success, messages }
func (h *MessageHandler) LoveMessages(c *gin.Context) {
	messages, err := h.svc.LoveMessages(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"messages": messages})
}

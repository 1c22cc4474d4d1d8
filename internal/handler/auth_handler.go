// Package handler 提供 HTTP 请求处理器
// 本文件处理注册/验证/用户资料相关的 API 请求
package handler

import (
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证与用户资料请求处理器
type AuthHandler struct {
	svc service.AuthService
}

// NewAuthHandler 构造函数
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register 注册
// POST /api/auth/register
// 成功: { success, userId, verificationCode, message }
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	resp, err := h.svc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{
		"userId":           resp.UserId,
		"verificationCode": resp.VerificationCode,
		"message":          resp.Message,
	})
}

// Verify 校验验证码并补充资料
// POST /api/auth/verify
// 成功: { success, user }
func (h *AuthHandler) Verify(c *gin.Context) {
	var req request.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	user, err := h.svc.Verify(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"user": user})
}

// GetUser 取用户资料
// GET /api/user/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"user": user})
}

// UpdateAvatar 更新头像
// POST /api/user/:id/avatar
func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	var req request.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	user, err := h.svc.UpdateAvatar(c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"user": user})
}

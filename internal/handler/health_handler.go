package handler

import (
	"net/http"

	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	svc service.HealthService
}

// NewHealthHandler 构造函数
func NewHealthHandler(svc service.HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check 健康检查
// GET /api/health
// 存储不可用也返回 200，Database 字段标记 Disconnected
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Check())
}

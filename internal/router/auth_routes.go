package router

import (
	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册认证与用户资料相关路由
func RegisterAuthRoutes(r *gin.Engine, h *handler.Handlers) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/verify", h.Auth.Verify)
	}

	userGroup := r.Group("/api/user")
	{
		userGroup.GET("/:id", h.Auth.GetUser)
		userGroup.POST("/:id/avatar", h.Auth.UpdateAvatar)
	}
}

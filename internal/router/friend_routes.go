package router

import (
	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友相关路由
func RegisterFriendRoutes(r *gin.Engine, h *handler.Handlers) {
	friendGroup := r.Group("/api/friends")
	{
		friendGroup.GET("/search", h.Friend.Search)
		friendGroup.POST("/request", h.Friend.SendRequest)
	}
}

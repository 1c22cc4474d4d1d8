package router

import (
	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterCommunityRoutes 注册社区相关路由
func RegisterCommunityRoutes(r *gin.Engine, h *handler.Handlers) {
	r.POST("/api/communities", h.Community.Create)

	communityGroup := r.Group("/api/communities")
	{
		communityGroup.GET("/search", h.Community.Search)
		communityGroup.POST("/:id/join", h.Community.Join)
		communityGroup.GET("/:id/messages", h.Community.Messages)
		communityGroup.POST("/:id/messages", h.Community.SendMessage)
		communityGroup.POST("/:id/mute", h.Community.Mute)
		communityGroup.POST("/:id/unmute", h.Community.Unmute)
	}
}

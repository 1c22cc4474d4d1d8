package router

import (
	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes 注册私信与 LOVE 聊天相关路由
func RegisterMessageRoutes(r *gin.Engine, h *handler.Handlers) {
	messageGroup := r.Group("/api/messages")
	{
		messageGroup.POST("/send", h.Message.SendPrivate)
		messageGroup.GET("/history", h.Message.History)
	}

	loveGroup := r.Group("/api/love")
	{
		loveGroup.POST("/create", h.Message.CreateLoveChat)
		loveGroup.POST("/:id/messages", h.Message.SendLoveMessage)
		loveGroup.GET("/:id/messages", h.Message.LoveMessages)
	}
}

package router

import (
	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes 注册动态帖子相关路由
// vastapae 是历史遗留的客户端约定路径，保持不动
func RegisterFeedRoutes(r *gin.Engine, h *handler.Handlers) {
	feedGroup := r.Group("/api/feed")
	{
		feedGroup.POST("/posts", h.Feed.CreatePost)
		feedGroup.GET("/vastapae", h.Feed.ListPosts)
	}
}

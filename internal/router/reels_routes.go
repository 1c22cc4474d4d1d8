package router

import (
	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterReelsRoutes 注册短视频相关路由
// feed/search 是静态段，必须与 :id 并存（gin 的 radix 树支持这种混排）
func RegisterReelsRoutes(r *gin.Engine, h *handler.Handlers) {
	reelsGroup := r.Group("/api/reels")
	{
		reelsGroup.POST("/upload", h.Reels.Upload)
		reelsGroup.GET("/feed", h.Reels.Feed)
		reelsGroup.GET("/search", h.Reels.Search)
		reelsGroup.GET("/:id", h.Reels.GetById)
		reelsGroup.GET("/:id/video", h.Reels.GetVideo)
		reelsGroup.POST("/:id/like", h.Reels.ToggleLike)
	}
}

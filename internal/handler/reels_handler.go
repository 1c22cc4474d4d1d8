// Package handler 提供 HTTP 请求处理器
// 本文件处理短视频相关的 API 请求
package handler

import (
	"strconv"

	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ReelsHandler 短视频请求处理器
type ReelsHandler struct {
	svc service.ReelsService
}

// NewReelsHandler 构造函数
func NewReelsHandler(svc service.ReelsService) *ReelsHandler {
	return &ReelsHandler{svc: svc}
}

// Upload 上传内联视频
// POST /api/reels/upload
// 成功: { success, reel, message }
func (h *ReelsHandler) Upload(c *gin.Context) {
	var req request.UploadReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	reel, err := h.svc.Upload(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"reel": reel, "message": "Reel успешно загружен"})
}

// Feed 分页取最新 Reels
// GET /api/reels/feed?page&limit&userId
// 成功: { success, reels, pagination }
func (h *ReelsHandler) Feed(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	feed, err := h.svc.Feed(page, limit, c.Query("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"reels": feed.Reels, "pagination": feed.Pagination})
}

// GetById 取单条 Reel
// GET /api/reels/:id?userId
func (h *ReelsHandler) GetById(c *gin.Context) {
	reel, err := h.svc.GetById(c.Param("id"), c.Query("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"reel": reel})
}

// GetVideo 取视频内容
// GET /api/reels/:id/video
// 成功: { success, video, mimeType, filename }
func (h *ReelsHandler) GetVideo(c *gin.Context) {
	video, err := h.svc.GetVideo(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{
		"video":    video.Video,
		"mimeType": video.MimeType,
		"filename": video.Filename,
	})
}

// ToggleLike 点赞/取消点赞
// POST /api/reels/:id/like
// 成功: { success, likes_count, is_liked }
func (h *ReelsHandler) ToggleLike(c *gin.Context) {
	var req request.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	result, err := h.svc.ToggleLike(c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"likes_count": result.LikesCount, "is_liked": result.IsLiked})
}

// Search 按描述/作者名搜索
// GET /api/reels/search?query&userId
// 成功: { success, reels }
func (h *ReelsHandler) Search(c *gin.Context) {
	reels, err := h.svc.Search(c.Query("query"), c.Query("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"reels": reels})
}

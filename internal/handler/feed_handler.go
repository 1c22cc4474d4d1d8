package handler

import (
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler 动态帖子请求处理器
type FeedHandler struct {
	svc service.FeedService
}

// NewFeedHandler 构造函数
func NewFeedHandler(svc service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// CreatePost 发布帖子
// POST /api/feed/posts
// 成功: { success, post }
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req request.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	post, err := h.svc.CreatePost(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"post": post})
}

// ListPosts 取最新帖子
// GET /api/feed/vastapae
// 成功: { success, posts }
func (h *FeedHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPosts()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"posts": posts})
}

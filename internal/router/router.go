// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"net/http"
	"strings"

	"coolpep_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// landingPage 非 API GET 请求的兜底页面
const landingPage = `<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Coolpep</title></head>
<body>
<h1>Coolpep API</h1>
<p>Сервер работает. Все маршруты начинаются с <code>/api/</code>.</p>
</body>
</html>`

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用，按模块分别注册各个路由组
func RegisterRoutes(r *gin.Engine, h *handler.Handlers) {
	RegisterAuthRoutes(r, h)      // 注册/验证/资料路由
	RegisterReelsRoutes(r, h)     // 短视频路由
	RegisterFriendRoutes(r, h)    // 好友路由
	RegisterCommunityRoutes(r, h) // 社区路由
	RegisterFeedRoutes(r, h)      // 动态帖子路由
	RegisterMessageRoutes(r, h)   // 私信与 LOVE 聊天路由

	r.GET("/api/health", h.Health.Check)

	// 未匹配路由：API 前缀返回 404 JSON，其余 GET 给落地页
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "API route not found: " + c.Request.URL.Path,
			})
			return
		}
		if c.Request.Method == http.MethodGet {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

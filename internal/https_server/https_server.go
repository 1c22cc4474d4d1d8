// Package https_server 提供 HTTP 服务器的初始化和配置
// 负责创建 Gin 引擎实例并挂载中间件和路由
package https_server

import (
	"coolpep_server/internal/config"
	"coolpep_server/internal/handler"
	"coolpep_server/internal/infrastructure/logger"
	"coolpep_server/internal/infrastructure/middleware"
	"coolpep_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 初始化 Gin 引擎
// 用 gin.New() 起空白引擎，日志/恢复/CORS 全部自己挂载
func Init(handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS 终结在本进程时才挂重定向
	conf := config.GetConfig()
	if conf.TlsConfig.ForceHttps {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	router.RegisterRoutes(engine, handlers)

	return engine
}

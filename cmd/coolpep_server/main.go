package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coolpep_server/internal/config"
	dao "coolpep_server/internal/dao/postgres"
	myredis "coolpep_server/internal/dao/redis"
	"coolpep_server/internal/handler"
	"coolpep_server/internal/https_server"
	"coolpep_server/internal/infrastructure/logger"
	"coolpep_server/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化校验错误翻译器
	if err := handler.InitTrans("ru"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 4. 初始化数据库
	// 存储不可用不退出：feed/health 走内置演示数据继续服务
	repos, err := dao.Init()
	if err != nil {
		zap.L().Error("数据库不可用，进入降级模式", zap.Error(err))
		repos = nil
	} else {
		zap.L().Info("数据库初始化成功")
	}

	// 5. 初始化 Redis（验证码缓存，连不上只降级不致命）
	myredis.Init()
	defer myredis.Close()

	// 6. 依赖注入：Service → Handler
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(services)
	zap.L().Info("Service 层初始化成功")

	// 7. 组装引擎并启动服务
	engine := https_server.Init(handlers)
	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		zap.L().Info("服务器启动", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 等待退出信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("服务器强制关闭", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}

// Package health 提供健康检查
// 存储不可用时仍返回 OK 状态，但 Database 标记为 Disconnected，
// 计数取内置演示集大小
package health

import (
	"time"

	"go.uber.org/zap"

	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/dto/respond"
)

// demoCount 演示数据集的大小（用户和 Reels 各 4 条）
const demoCount = 4

type healthService struct {
	repos *repository.Repositories
}

// NewHealthService 构造函数
func NewHealthService(repos *repository.Repositories) *healthService {
	return &healthService{repos: repos}
}

// Check 汇报存储连通性与数据量
func (h *healthService) Check() *respond.HealthRespond {
	resp := &respond.HealthRespond{
		Status:     "OK",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Database:   "Connected",
		ReelsCount: demoCount,
		UsersCount: demoCount,
	}
	if h.repos == nil {
		resp.Database = "Disconnected"
		return resp
	}

	reelsCount, err := h.repos.Reel.Count()
	if err != nil {
		zap.L().Warn("health reels count failed", zap.Error(err))
		resp.Database = "Disconnected"
		return resp
	}
	usersCount, err := h.repos.User.Count()
	if err != nil {
		zap.L().Warn("health users count failed", zap.Error(err))
		resp.Database = "Disconnected"
		return resp
	}

	resp.ReelsCount = reelsCount
	resp.UsersCount = usersCount
	return resp
}

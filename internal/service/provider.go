package service

import (
	"coolpep_server/internal/dao/postgres/repository"
	"coolpep_server/internal/service/auth"
	"coolpep_server/internal/service/community"
	"coolpep_server/internal/service/feed"
	"coolpep_server/internal/service/friend"
	"coolpep_server/internal/service/health"
	"coolpep_server/internal/service/message"
	"coolpep_server/internal/service/reels"
)

// Services 聚合所有业务服务，统一注入 handler 层
type Services struct {
	Auth      AuthService
	Reels     ReelsService
	Friend    FriendService
	Community CommunityService
	Feed      FeedService
	Message   MessageService
	Health    HealthService
}

// NewServices 创建服务聚合
// repos 允许为 nil（存储初始化失败），各服务自行降级
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:      auth.NewAuthService(repos),
		Reels:     reels.NewReelsService(repos),
		Friend:    friend.NewFriendService(repos),
		Community: community.NewCommunityService(repos),
		Feed:      feed.NewFeedService(repos),
		Message:   message.NewMessageService(repos),
		Health:    health.NewHealthService(repos),
	}
}

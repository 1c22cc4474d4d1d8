// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构，Router 层通过它访问各个 Handler
package handler

import (
	"coolpep_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
type Handlers struct {
	Auth      *AuthHandler
	Reels     *ReelsHandler
	Friend    *FriendHandler
	Community *CommunityHandler
	Feed      *FeedHandler
	Message   *MessageHandler
	Health    *HealthHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.Auth),
		Reels:     NewReelsHandler(svc.Reels),
		Friend:    NewFriendHandler(svc.Friend),
		Community: NewCommunityHandler(svc.Community),
		Feed:      NewFeedHandler(svc.Feed),
		Message:   NewMessageHandler(svc.Message),
		Health:    NewHealthHandler(svc.Health),
	}
}

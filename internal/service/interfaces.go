// Package service 定义各业务模块的服务接口与聚合
// 接口只依赖 dto，资源句柄（仓储、缓存）由实现持有
package service

import (
	"coolpep_server/internal/dto/request"
	"coolpep_server/internal/dto/respond"
)

// AuthService 注册/验证/资料服务接口
type AuthService interface {
	// Register 注册新用户并下发验证码，手机号重复时报错
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Verify 校验验证码，可顺带补充资料字段
	Verify(req request.VerifyRequest) (*respond.UserRespond, error)
	// GetUser 按 id 取用户公开资料
	GetUser(id string) (*respond.UserRespond, error)
	// UpdateAvatar 更新头像并返回更新后的资料
	UpdateAvatar(id string, req request.UpdateAvatarRequest) (*respond.UserRespond, error)
}

// ReelsService 短视频服务接口
type ReelsService interface {
	// Upload 校验并保存内联 base64 视频
	Upload(req request.UploadReelRequest) (*respond.ReelRespond, error)
	// Feed 分页取最新 Reels，存储不可用时退回内置演示数据
	Feed(page, limit int, callerUserId string) (*respond.FeedRespond, error)
	// GetById 取单条 Reel 并累加浏览数
	GetById(id, callerUserId string) (*respond.ReelRespond, error)
	// GetVideo 取视频内容（base64 或演示数据的远程地址）
	GetVideo(id string) (*respond.VideoRespond, error)
	// ToggleLike 点赞/取消点赞，返回权威计数
	ToggleLike(reelId string, req request.ToggleLikeRequest) (*respond.ToggleLikeRespond, error)
	// Search 按描述/作者名搜索，要求查询串至少 2 个字符
	Search(query, callerUserId string) ([]respond.ReelRespond, error)
}

// FriendService 好友服务接口
type FriendService interface {
	// Search 按名字搜索用户
	Search(query string) ([]respond.UserRespond, error)
	// SendRequest 发送好友请求，重复请求报错
	SendRequest(req request.FriendRequestRequest) error
}

// CommunityService 社区服务接口
type CommunityService interface {
	// Create 创建社区，创建者自动成为 admin 成员
	Create(req request.CreateCommunityRequest) (*respond.CommunityRespond, error)
	// Join 加入社区，成为普通成员
	Join(communityId string, req request.JoinCommunityRequest) error
	// Search 按名称/描述搜索社区，按成员数降序
	Search(query, communityType string) ([]respond.CommunitySearchRespond, error)
	// Messages 取社区消息列表（升序）
	Messages(communityId string) ([]respond.CommunityMessageRespond, error)
	// SendMessage 发送社区消息，被禁言成员拒绝
	SendMessage(communityId string, req request.CommunityMessageRequest) (*respond.CommunityMessageRespond, error)
	// Mute 禁言成员，仅 admin/moderator 可操作
	Mute(communityId string, req request.MuteMemberRequest) error
	// Unmute 解除禁言，仅 admin/moderator 可操作
	Unmute(communityId string, req request.UnmuteMemberRequest) error
}

// FeedService 动态帖子服务接口
type FeedService interface {
	// CreatePost 发布帖子，可选关联社区
	CreatePost(req request.CreatePostRequest) (*respond.PostRespond, error)
	// ListPosts 取最新帖子列表
	ListPosts() ([]respond.PostRespond, error)
}

// MessageService 私信与 LOVE 聊天服务接口
type MessageService interface {
	// SendPrivate 发送私信（支持匿名）
	SendPrivate(req request.PrivateMessageRequest) (*respond.PrivateMessageRespond, error)
	// Conversation 取两个用户之间的双向私信（升序）
	Conversation(userId, peerId string) ([]respond.PrivateMessageRespond, error)
	// CreateLoveChat 创建双人 LOVE 聊天
	CreateLoveChat(req request.CreateLoveChatRequest) (*respond.LoveChatRespond, error)
	// SendLoveMessage 在聊天内发消息，聊天不存在报错
	SendLoveMessage(chatId string, req request.LoveMessageRequest) (*respond.LoveMessageRespond, error)
	// LoveMessages 取聊天消息列表（升序）
	LoveMessages(chatId string) ([]respond.LoveMessageRespond, error)
}

// HealthService 健康检查服务接口
type HealthService interface {
	// Check 汇报存储连通性与数据量，存储不可用时降级为演示计数
	Check() *respond.HealthRespond
}

package repository

import (
	"coolpep_server/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(user *model.User) error
	FindById(id string) (*model.User, error)
	FindByPhone(phone string) (*model.User, error)
	UpdateFields(id string, fields map[string]any) error
	SearchByName(query string, limit int) ([]model.User, error)
	Count() (int64, error)
}

// ReelRepository Reels 数据访问接口，包含点赞表操作
type ReelRepository interface {
	Create(reel *model.Reel) error
	FindById(id string) (*model.Reel, error)
	FindRowById(id, callerUserId string) (*ReelRow, error)
	Feed(callerUserId string, limit, offset int) ([]ReelRow, error)
	Search(query, callerUserId string, limit int) ([]ReelRow, error)
	Count() (int64, error)
	IncrementViews(ids []string) error

	FindLike(reelId, userId string) (*model.ReelLike, error)
	CreateLike(like *model.ReelLike) error
	DeleteLike(reelId, userId string) error
	CountLikes(reelId string) (int64, error)
	UpdateLikesCount(reelId string, count int64) error
}

// FriendRepository 好友边数据访问接口
type FriendRepository interface {
	CreateRequest(edge *model.Friend) error
}

// CommunityRepository 社区数据访问接口
type CommunityRepository interface {
	Create(community *model.Community) error
	FindById(id string) (*model.Community, error)
	Search(query, communityType string, limit int) ([]CommunityRow, error)
}

// MemberRepository 社区成员数据访问接口
type MemberRepository interface {
	Create(member *model.CommunityMember) error
	Find(communityId, userId string) (*model.CommunityMember, error)
	SetMute(communityId, userId string, muted bool, reason, mutedBy string) error
}

// MessageRepository 社区消息与私信数据访问接口
type MessageRepository interface {
	CreateCommunityMessage(msg *model.CommunityMessage) error
	ListCommunityMessages(communityId string, limit int) ([]CommunityMessageRow, error)
	CreatePrivateMessage(msg *model.PrivateMessage) error
	ListConversation(userId, peerId string) ([]model.PrivateMessage, error)
}

// PostRepository 动态帖子数据访问接口
type PostRepository interface {
	Create(post *model.Post) error
	ListFeed(limit int) ([]PostRow, error)
}

// LoveRepository LOVE 聊天数据访问接口
type LoveRepository interface {
	CreateChat(chat *model.LoveChat) error
	FindChat(id string) (*model.LoveChat, error)
	CreateMessage(msg *model.LoveMessage) error
	ListMessages(chatId string, limit int) ([]model.LoveMessage, error)
}

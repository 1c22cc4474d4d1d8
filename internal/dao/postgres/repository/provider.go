package repository

import (
	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db        *gorm.DB
	User      UserRepository
	Reel      ReelRepository
	Friend    FriendRepository
	Community CommunityRepository
	Member    MemberRepository
	Message   MessageRepository
	Post      PostRepository
	Love      LoveRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:        db,
		User:      NewUserRepository(db),
		Reel:      NewReelRepository(db),
		Friend:    NewFriendRepository(db),
		Community: NewCommunityRepository(db),
		Member:    NewMemberRepository(db),
		Message:   NewMessageRepository(db),
		Post:      NewPostRepository(db),
		Love:      NewLoveRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// 用于"创建社区+写入管理员成员"和"toggle 点赞+重算计数"这类多语句操作
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// RecoverReelTables 应急恢复：删除并重建 reels/reel_likes
// 仅在请求期检测到缺列错误时调用（IsMissingColumn），属于恢复动作而非常规迁移
// 表中已有数据会丢失，调用方需记录日志
func (r *Repositories) RecoverReelTables() error {
	migrator := r.db.Migrator()
	if err := migrator.DropTable(&model.ReelLike{}, &model.Reel{}); err != nil {
		return wrapDBError(err, "drop reel tables")
	}
	if err := r.db.AutoMigrate(&model.Reel{}, &model.ReelLike{}); err != nil {
		return wrapDBError(err, "recreate reel tables")
	}
	return nil
}

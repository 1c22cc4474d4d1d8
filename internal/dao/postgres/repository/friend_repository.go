package repository

import (
	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository 创建好友 Repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// CreateRequest 写入好友请求边，(user_id, friend_id) 唯一
func (r *friendRepository) CreateRequest(edge *model.Friend) error {
	if err := r.db.Create(edge).Error; err != nil {
		return wrapDBError(err, "создание заявки в друзья")
	}
	return nil
}

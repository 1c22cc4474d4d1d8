package repository

import (
	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

type loveRepository struct {
	db *gorm.DB
}

// NewLoveRepository 创建 LOVE 聊天 Repository
func NewLoveRepository(db *gorm.DB) LoveRepository {
	return &loveRepository{db: db}
}

// CreateChat 创建双人聊天
func (r *loveRepository) CreateChat(chat *model.LoveChat) error {
	if err := r.db.Create(chat).Error; err != nil {
		return wrapDBError(err, "создание LOVE чата")
	}
	return nil
}

// FindChat 按主键查找聊天
func (r *loveRepository) FindChat(id string) (*model.LoveChat, error) {
	var chat model.LoveChat
	if err := r.db.First(&chat, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "поиск LOVE чата id=%s", id)
	}
	return &chat, nil
}

// CreateMessage 写入聊天消息
func (r *loveRepository) CreateMessage(msg *model.LoveMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return wrapDBError(err, "отправка сообщения в LOVE чат")
	}
	return nil
}

// ListMessages 按时间升序取聊天消息
func (r *loveRepository) ListMessages(chatId string, limit int) ([]model.LoveMessage, error) {
	var msgs []model.LoveMessage
	err := r.db.
		Where("love_chat_id = ?", chatId).
		Order("created_at ASC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, wrapDBError(err, "выборка сообщений LOVE чата")
	}
	return msgs, nil
}

package repository

import (
	"time"

	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

// CommunityMessageRow 社区消息 + 作者展示字段
type CommunityMessageRow struct {
	Id          string    `json:"id"`
	CommunityId string    `json:"community_id"`
	UserId      string    `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	AvatarUrl   string    `json:"avatar_url"`
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建消息 Repository（社区消息 + 私信）
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// CreateCommunityMessage 写入社区消息
func (r *messageRepository) CreateCommunityMessage(msg *model.CommunityMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return wrapDBError(err, "отправка сообщения в сообщество")
	}
	return nil
}

// ListCommunityMessages 按时间升序取社区消息，联表取作者字段
func (r *messageRepository) ListCommunityMessages(communityId string, limit int) ([]CommunityMessageRow, error) {
	var rows []CommunityMessageRow
	err := r.db.Raw(`
SELECT cm.id, cm.community_id, cm.user_id, cm.content, cm.created_at,
       COALESCE(u.name, '') AS name,
       COALESCE(u.surname, '') AS surname,
       COALESCE(u.avatar_url, '') AS avatar_url
FROM community_messages cm
JOIN users u ON cm.user_id = u.id
WHERE cm.community_id = ?
ORDER BY cm.created_at ASC
LIMIT ?`, communityId, limit).Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "выборка сообщений сообщества")
	}
	return rows, nil
}

// CreatePrivateMessage 写入私信
func (r *messageRepository) CreatePrivateMessage(msg *model.PrivateMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return wrapDBError(err, "отправка личного сообщения")
	}
	return nil
}

// ListConversation 取两个用户之间双向的私信，按时间升序
func (r *messageRepository) ListConversation(userId, peerId string) ([]model.PrivateMessage, error) {
	var msgs []model.PrivateMessage
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userId, peerId, peerId, userId).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, wrapDBError(err, "выборка переписки")
	}
	return msgs, nil
}

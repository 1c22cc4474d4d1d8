package repository

import (
	"time"

	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

// PostRow 帖子 + 作者与社区展示字段
type PostRow struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	Content       string    `json:"content"`
	CommunityId   string    `json:"community_id"`
	CreatedAt     time.Time `json:"created_at"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	AvatarUrl     string    `json:"avatar_url"`
	CommunityName string    `json:"community_name"`
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建帖子 Repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 创建帖子
func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return wrapDBError(err, "создание поста")
	}
	return nil
}

// ListFeed 最新帖子，联表取作者与社区名
func (r *postRepository) ListFeed(limit int) ([]PostRow, error) {
	var rows []PostRow
	err := r.db.Raw(`
SELECT p.id, p.user_id, p.content, p.community_id, p.created_at,
       u.name, COALESCE(u.surname, '') AS surname,
       COALESCE(u.avatar_url, '') AS avatar_url,
       COALESCE(c.name, '') AS community_name
FROM posts p
JOIN users u ON p.user_id = u.id
LEFT JOIN communities c ON p.community_id = c.id
ORDER BY p.created_at DESC
LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "выборка ленты постов")
	}
	return rows, nil
}

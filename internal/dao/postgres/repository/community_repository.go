package repository

import (
	"strings"
	"time"

	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

// CommunityRow 搜索结果行：社区字段 + 成员数
type CommunityRow struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	IsPrivate    bool      `json:"is_private"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	MembersCount int64     `json:"members_count"`
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository 创建社区 Repository
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

// Create 创建社区
func (r *communityRepository) Create(community *model.Community) error {
	if err := r.db.Create(community).Error; err != nil {
		return wrapDBError(err, "создание сообщества")
	}
	return nil
}

// FindById 按主键查找社区
func (r *communityRepository) FindById(id string) (*model.Community, error) {
	var community model.Community
	if err := r.db.First(&community, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "поиск сообщества id=%s", id)
	}
	return &community, nil
}

// Search 按名称/描述子串搜索，type 非空且非 "all" 时精确过滤
// 按成员数降序排序（相关性代理），上限由调用方给定
func (r *communityRepository) Search(query, communityType string, limit int) ([]CommunityRow, error) {
	sql := `
SELECT c.id, c.name, c.type, c.description, c.is_private, c.created_by, c.created_at,
       COUNT(cm.user_id) AS members_count
FROM communities c
LEFT JOIN community_members cm ON c.id = cm.community_id
WHERE 1=1`
	args := []any{}

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		sql += " AND (LOWER(c.name) LIKE ? OR LOWER(c.description) LIKE ?)"
		args = append(args, pattern, pattern)
	}
	if communityType != "" && communityType != "all" {
		sql += " AND c.type = ?"
		args = append(args, communityType)
	}

	sql += ` GROUP BY c.id, c.name, c.type, c.description, c.is_private, c.created_by, c.created_at
ORDER BY members_count DESC LIMIT ?`
	args = append(args, limit)

	var rows []CommunityRow
	if err := r.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, wrapDBError(err, "поиск сообществ")
	}
	return rows, nil
}

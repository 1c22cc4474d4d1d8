package repository

import (
	"strings"
	"time"

	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

// ReelRow feed/详情查询的联表结果行
// likes_count 按 reel_likes 实时重算（存储列只是缓存）
// is_liked 用 CASE WHEN EXISTS ... THEN 1 ELSE 0 计算：
// 布尔类型在 postgres/sqlite 两种驱动下扫描行为不同，int 最稳
type ReelRow struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	VideoFilename string    `json:"video_filename"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	Caption       string    `json:"caption"`
	Music         string    `json:"music"`
	Duration      int       `json:"duration"`
	ViewsCount    int       `json:"views_count"`
	CreatedAt     time.Time `json:"created_at"`
	UserName      string    `json:"user_name"`
	UserAvatar    string    `json:"user_avatar"`
	LikesCount    int64     `json:"likes_count"`
	IsLiked       int       `json:"is_liked"`
}

// reelSelect 联表查询的公共 SELECT 片段
// 不取 video_data：内联视频很大，只在 /video 接口单独读取
const reelSelect = `
SELECT r.id, r.user_id, r.video_filename, r.file_size, r.mime_type,
       r.caption, r.music, r.duration, r.views_count, r.created_at,
       COALESCE(u.name, '') AS user_name,
       COALESCE(u.avatar_url, '') AS user_avatar,
       (SELECT COUNT(*) FROM reel_likes l WHERE l.reel_id = r.id) AS likes_count,
       CASE WHEN EXISTS (
           SELECT 1 FROM reel_likes l WHERE l.reel_id = r.id AND l.user_id = ?
       ) THEN 1 ELSE 0 END AS is_liked
FROM reels r
LEFT JOIN users u ON r.user_id = u.id`

type reelRepository struct {
	db *gorm.DB
}

// NewReelRepository 创建 Reels Repository
func NewReelRepository(db *gorm.DB) ReelRepository {
	return &reelRepository{db: db}
}

// Create 写入一条新 Reel
func (r *reelRepository) Create(reel *model.Reel) error {
	if err := r.db.Create(reel).Error; err != nil {
		return wrapDBError(err, "создание Reel")
	}
	return nil
}

// FindById 按主键查找（含 video_data）
func (r *reelRepository) FindById(id string) (*model.Reel, error) {
	var reel model.Reel
	if err := r.db.First(&reel, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "поиск Reel id=%s", id)
	}
	return &reel, nil
}

// FindRowById 按主键取联表行（上传者字段 + 实时点赞数 + is_liked）
func (r *reelRepository) FindRowById(id, callerUserId string) (*ReelRow, error) {
	var rows []ReelRow
	err := r.db.Raw(reelSelect+" WHERE r.id = ?", callerUserId, id).Scan(&rows).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "поиск Reel id=%s", id)
	}
	if len(rows) == 0 {
		return nil, wrapDBErrorf(gorm.ErrRecordNotFound, "Reel id=%s", id)
	}
	return &rows[0], nil
}

// Feed 取一页 feed，严格按 created_at 降序，id 降序兜底保证稳定分页
func (r *reelRepository) Feed(callerUserId string, limit, offset int) ([]ReelRow, error) {
	var rows []ReelRow
	err := r.db.Raw(
		reelSelect+" ORDER BY r.created_at DESC, r.id DESC LIMIT ? OFFSET ?",
		callerUserId, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "выборка ленты Reels")
	}
	return rows, nil
}

// Search 按描述或上传者名字/姓氏大小写不敏感子串搜索
func (r *reelRepository) Search(query, callerUserId string, limit int) ([]ReelRow, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []ReelRow
	err := r.db.Raw(
		reelSelect+` WHERE LOWER(r.caption) LIKE ? OR LOWER(u.name) LIKE ? OR LOWER(u.surname) LIKE ?
ORDER BY r.created_at DESC, r.id DESC LIMIT ?`,
		callerUserId, pattern, pattern, pattern, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "поиск Reels")
	}
	return rows, nil
}

// Count Reels 总数（分页 total / health 接口用）
func (r *reelRepository) Count() (int64, error) {
	var cnt int64
	if err := r.db.Model(&model.Reel{}).Count(&cnt).Error; err != nil {
		return 0, wrapDBError(err, "подсчёт Reels")
	}
	return cnt, nil
}

// IncrementViews 对一批 Reel 的浏览数各 +1
// 整页一条批量 UPDATE，一次返回只算一次浏览，不会按行重复计数
func (r *reelRepository) IncrementViews(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.Model(&model.Reel{}).
		Where("id IN ?", ids).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
	if err != nil {
		return wrapDBError(err, "инкремент просмотров")
	}
	return nil
}

// ==================== 点赞表操作 ====================

// FindLike 查找点赞记录，不存在返回 CodeNotFound
func (r *reelRepository) FindLike(reelId, userId string) (*model.ReelLike, error) {
	var like model.ReelLike
	err := r.db.First(&like, "reel_id = ? AND user_id = ?", reelId, userId).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "поиск лайка reel=%s user=%s", reelId, userId)
	}
	return &like, nil
}

// CreateLike 写入点赞记录，(reel_id, user_id) 唯一
func (r *reelRepository) CreateLike(like *model.ReelLike) error {
	if err := r.db.Create(like).Error; err != nil {
		return wrapDBError(err, "создание лайка")
	}
	return nil
}

// DeleteLike 删除点赞记录
func (r *reelRepository) DeleteLike(reelId, userId string) error {
	err := r.db.Where("reel_id = ? AND user_id = ?", reelId, userId).
		Delete(&model.ReelLike{}).Error
	if err != nil {
		return wrapDBError(err, "удаление лайка")
	}
	return nil
}

// CountLikes 重算某条 Reel 的点赞数（权威来源）
func (r *reelRepository) CountLikes(reelId string) (int64, error) {
	var cnt int64
	err := r.db.Model(&model.ReelLike{}).Where("reel_id = ?", reelId).Count(&cnt).Error
	if err != nil {
		return 0, wrapDBError(err, "подсчёт лайков")
	}
	return cnt, nil
}

// UpdateLikesCount 将冗余计数列对齐到权威值
func (r *reelRepository) UpdateLikesCount(reelId string, count int64) error {
	err := r.db.Model(&model.Reel{}).Where("id = ?", reelId).
		UpdateColumn("likes_count", count).Error
	if err != nil {
		return wrapDBError(err, "синхронизация счётчика лайков")
	}
	return nil
}

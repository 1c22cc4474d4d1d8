package repository

import (
	"strings"

	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "создание пользователя")
	}
	return nil
}

// FindById 按 id 查找用户
func (r *userRepository) FindById(id string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "поиск пользователя id=%s", id)
	}
	return &user, nil
}

// FindByPhone 按手机号查找用户
func (r *userRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "phone = ?", phone).Error; err != nil {
		return nil, wrapDBErrorf(err, "поиск пользователя phone=%s", phone)
	}
	return &user, nil
}

// UpdateFields 部分更新用户字段（surname/bio/gender/avatar_url）
func (r *userRepository) UpdateFields(id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return wrapDBError(err, "обновление пользователя")
	}
	return nil
}

// SearchByName 按名字/姓氏大小写不敏感子串搜索
// LOWER(...) LIKE 与 Postgres 的 ILIKE 语义一致，且在测试用的 sqlite 上可用
func (r *userRepository) SearchByName(query string, limit int) ([]model.User, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var users []model.User
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(surname) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, wrapDBError(err, "поиск пользователей")
	}
	return users, nil
}

// Count 用户总数（health 接口用）
func (r *userRepository) Count() (int64, error) {
	var cnt int64
	if err := r.db.Model(&model.User{}).Count(&cnt).Error; err != nil {
		return 0, wrapDBError(err, "подсчёт пользователей")
	}
	return cnt, nil
}

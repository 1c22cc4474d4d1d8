// Package model 定义数据库实体模型
// 本文件定义用户模型，由注册接口创建，资料/头像接口更新，无硬删除路径
package model

import "time"

// User 用户模型
// 对应数据库 users 表
type User struct {
	// Id 用户唯一标识，UUID 字符串，在 Service 层生成
	Id string `gorm:"column:id;type:varchar(36);primaryKey"`

	// Phone 手机号，注册唯一键
	Phone string `gorm:"column:phone;type:varchar(20);uniqueIndex;not null"`

	// Name 名字，注册必填
	Name string `gorm:"column:name;type:varchar(100);not null"`

	// Surname 姓氏（验证阶段可选补充）
	Surname string `gorm:"column:surname;type:varchar(100)"`

	// Bio 个人简介
	Bio string `gorm:"column:bio;type:text"`

	// Gender 性别，自由文本（male/female/...）
	Gender string `gorm:"column:gender;type:varchar(20)"`

	// AvatarUrl 头像地址
	AvatarUrl string `gorm:"column:avatar_url;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

package model

import "time"

// Community 社区模型
type Community struct {
	Id          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(200);not null"`
	Type        string    `gorm:"column:type;type:varchar(50);not null"`
	Description string    `gorm:"column:description;type:text"`
	IsPrivate   bool      `gorm:"column:is_private;default:false"`
	CreatedBy   string    `gorm:"column:created_by;type:varchar(36)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Community) TableName() string {
	return "communities"
}

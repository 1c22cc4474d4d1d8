package model

import "time"

// Reel 短视频模型
// 视频内容以 base64 编码内联存储（video_data），不落磁盘
type Reel struct {
	Id     string `gorm:"column:id;type:varchar(36);primaryKey"`
	UserId string `gorm:"column:user_id;type:varchar(36);index;not null;comment:上传者，逻辑外键不强制"`

	// VideoData base64 编码的视频内容
	VideoData     string `gorm:"column:video_data;type:text;not null"`
	VideoFilename string `gorm:"column:video_filename;type:varchar(255);not null"`
	FileSize      int64  `gorm:"column:file_size;default:0;comment:原始字节数"`
	MimeType      string `gorm:"column:mime_type;type:varchar(100)"`

	Caption  string `gorm:"column:caption;type:text"`
	Music    string `gorm:"column:music;type:varchar(255)"`
	Duration int    `gorm:"column:duration;default:15;comment:时长（秒）"`

	// LikesCount 冗余计数缓存，真实来源是 reel_likes 的 COUNT(*)
	// 每次 toggle 在同一事务内重新对齐
	LikesCount int `gorm:"column:likes_count;default:0"`

	// ViewsCount 每次 feed/详情读取时 +1
	ViewsCount int `gorm:"column:views_count;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;index;autoCreateTime"`
}

func (Reel) TableName() string {
	return "reels"
}

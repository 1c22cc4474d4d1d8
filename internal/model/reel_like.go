package model

import "time"

// ReelLike 点赞记录，(reel_id, user_id) 唯一
// 只有创建和删除两条路径（toggle 语义），没有更新
type ReelLike struct {
	Id        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	ReelId    string    `gorm:"column:reel_id;type:varchar(36);uniqueIndex:idx_reel_user;not null"`
	UserId    string    `gorm:"column:user_id;type:varchar(36);uniqueIndex:idx_reel_user;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ReelLike) TableName() string {
	return "reel_likes"
}

package model

import "time"

// Friend 好友边，(user_id, friend_id) 唯一
type Friend struct {
	Id        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	UserId    string    `gorm:"column:user_id;type:varchar(36);uniqueIndex:idx_user_friend;not null"`
	FriendId  string    `gorm:"column:friend_id;type:varchar(36);uniqueIndex:idx_user_friend;not null"`
	Status    string    `gorm:"column:status;type:varchar(20);default:pending"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Friend) TableName() string {
	return "friends"
}

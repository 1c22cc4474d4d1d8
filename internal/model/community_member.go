package model

import "time"

// CommunityMember 社区成员关联表，(community_id, user_id) 唯一
// 禁言状态挂在成员行上：is_muted + 操作人 + 原因
type CommunityMember struct {
	Id          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	CommunityId string    `gorm:"column:community_id;type:varchar(36);uniqueIndex:idx_community_user;not null"`
	UserId      string    `gorm:"column:user_id;type:varchar(36);uniqueIndex:idx_community_user;not null"`
	Role        string    `gorm:"column:role;type:varchar(20);default:member;comment:member/moderator/admin"`
	IsMuted     bool      `gorm:"column:is_muted;default:false"`
	MuteReason  string    `gorm:"column:mute_reason;type:text"`
	MutedBy     string    `gorm:"column:muted_by;type:varchar(36)"`
	JoinedAt    time.Time `gorm:"column:joined_at;autoCreateTime"`
}

func (CommunityMember) TableName() string {
	return "community_members"
}

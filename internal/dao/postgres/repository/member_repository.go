package repository

import (
	"coolpep_server/internal/model"

	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建社区成员 Repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create 写入成员行，(community_id, user_id) 唯一
func (r *memberRepository) Create(member *model.CommunityMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "вступление в сообщество")
	}
	return nil
}

// Find 查找成员行，不存在返回 CodeNotFound
func (r *memberRepository) Find(communityId, userId string) (*model.CommunityMember, error) {
	var member model.CommunityMember
	err := r.db.First(&member, "community_id = ? AND user_id = ?", communityId, userId).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "поиск участника community=%s user=%s", communityId, userId)
	}
	return &member, nil
}

// SetMute 设置/解除禁言，同时记录操作管理员与原因
// 解除时原因和操作人一并清空
func (r *memberRepository) SetMute(communityId, userId string, muted bool, reason, mutedBy string) error {
	fields := map[string]any{
		"is_muted":    muted,
		"mute_reason": reason,
		"muted_by":    mutedBy,
	}
	if !muted {
		fields["mute_reason"] = ""
		fields["muted_by"] = ""
	}
	err := r.db.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityId, userId).
		Updates(fields).Error
	if err != nil {
		return wrapDBError(err, "изменение статуса заглушения")
	}
	return nil
}

package respond

import "time"

type CommunityRespond struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"is_private"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommunitySearchRespond 搜索结果带成员数，按成员数倒序
type CommunitySearchRespond struct {
	CommunityRespond
	MembersCount int64 `json:"members_count"`
}

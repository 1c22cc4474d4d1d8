package respond

import "time"

// PostRespond 帖子 + 作者与所属社区展示字段
type PostRespond struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	Content       string    `json:"content"`
	CommunityId   string    `json:"community_id"`
	CreatedAt     time.Time `json:"created_at"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	AvatarUrl     string    `json:"avatar_url"`
	CommunityName string    `json:"community_name"`
}

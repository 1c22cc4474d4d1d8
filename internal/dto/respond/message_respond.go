package respond

import "time"

// CommunityMessageRespond 社区消息 + 作者展示字段
type CommunityMessageRespond struct {
	Id          string    `json:"id"`
	CommunityId string    `json:"community_id"`
	UserId      string    `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	AvatarUrl   string    `json:"avatar_url"`
}

// PrivateMessageRespond 私信对外形态，匿名字段原样透出
type PrivateMessageRespond struct {
	Id              string    `json:"id"`
	SenderId        string    `json:"sender_id"`
	ReceiverId      string    `json:"receiver_id"`
	Content         string    `json:"content"`
	IsAnonymous     bool      `json:"is_anonymous"`
	AnonymousAvatar string    `json:"anonymous_avatar"`
	AnonymousName   string    `json:"anonymous_name"`
	CreatedAt       time.Time `json:"created_at"`
}

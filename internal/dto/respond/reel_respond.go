package respond

import "time"

// ReelRespond Reel 对外形态：行字段 + 上传者展示字段 + 点赞状态
// 不携带视频内容，内容走 /api/reels/:id/video
type ReelRespond struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	VideoFilename string    `json:"video_filename"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	Caption       string    `json:"caption"`
	Music         string    `json:"music"`
	Duration      int       `json:"duration"`
	LikesCount    int64     `json:"likes_count"`
	ViewsCount    int       `json:"views_count"`
	CreatedAt     time.Time `json:"created_at"`
	UserName      string    `json:"user_name"`
	UserAvatar    string    `json:"user_avatar"`
	IsLiked       bool      `json:"is_liked"`
}

// Pagination feed 分页元数据
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// FeedRespond feed 一页的结果
type FeedRespond struct {
	Reels      []ReelRespond `json:"reels"`
	Pagination Pagination    `json:"pagination"`
}

// VideoRespond 视频内容应答（base64 或演示数据的远程地址）
type VideoRespond struct {
	Video    string `json:"video"`
	MimeType string `json:"mimeType"`
	Filename string `json:"filename"`
}

// ToggleLikeRespond toggle 点赞的结果：权威计数 + 当前状态
type ToggleLikeRespond struct {
	LikesCount int64 `json:"likes_count"`
	IsLiked    bool  `json:"is_liked"`
}

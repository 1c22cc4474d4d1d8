package request

// UploadReelRequest 上传 Reel 请求
// Video 为 base64 编码的视频内容；FileSize 为原始字节数，
// 缺省时按 base64 长度估算；MimeType 缺省按 video/mp4 处理
type UploadReelRequest struct {
	UserId   string `json:"userId" binding:"required"`
	Video    string `json:"video" binding:"required"`
	Filename string `json:"filename"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
	Caption  string `json:"caption"`
	Music    string `json:"music"`
	Duration int    `json:"duration"`
}

package respond

// HealthRespond 健康检查应答
// 存储不可用时 Database 为 Disconnected，计数取内置演示集大小，仍返回 200
type HealthRespond struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Database   string `json:"database"`
	ReelsCount int64  `json:"reels_count"`
	UsersCount int64  `json:"users_count"`
}

package request

// RegisterRequest 注册请求
type RegisterRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

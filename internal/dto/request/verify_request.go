package request

// VerifyUserData 验证阶段可选补充的资料
type VerifyUserData struct {
	Surname string `json:"surname"`
	Bio     string `json:"bio"`
	Gender  string `json:"gender"`
}

// VerifyRequest 验证码确认请求
type VerifyRequest struct {
	UserId   string          `json:"userId" binding:"required"`
	Code     string          `json:"code" binding:"required"`
	UserData *VerifyUserData `json:"userData"`
}

package respond

// RegisterRespond 注册结果：用户 id + 固定验证码
type RegisterRespond struct {
	UserId           string `json:"userId"`
	VerificationCode string `json:"verificationCode"`
	Message          string `json:"message"`
}

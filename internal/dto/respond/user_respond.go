package respond

// UserRespond 用户对外形态，字段名与持久层列名保持一致
type UserRespond struct {
	Id        string `json:"id"`
	Phone     string `json:"phone"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Bio       string `json:"bio"`
	Gender    string `json:"gender"`
	AvatarUrl string `json:"avatar_url"`
}

package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}

// AuthResponse 包裝 user 欄位，signup/login/me 共用
// swagger:model api.AuthResponse
type AuthResponse struct {
	User UserResponse `json:"user"`
}

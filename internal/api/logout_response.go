package api

// swagger:model api.LogoutResponse
type LogoutResponse struct {
	OK bool `json:"ok" example:"true"`
}

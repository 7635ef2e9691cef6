package response_models

type AccountResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type AccountLoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

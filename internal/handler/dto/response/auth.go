package response

import "havenstay/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}

type RegisterResponse struct {
	ID string `json:"id"`
}

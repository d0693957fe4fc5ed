package request

import "strings"

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r LoginRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

package response

import (
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase"
)

type LoginResponse struct {
	Token string               `json:"token"`
	User  entities.SessionUser `json:"user"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, User: r.User}
}

// CityResponse carries where the write actually landed, so the screen can
// soften the success message to "saved locally" on remote failure.
type CityResponse struct {
	City   entities.City `json:"city"`
	Source string        `json:"source"`
}

func FromCityResult(r usecase.CityResult) CityResponse {
	return CityResponse{City: r.City, Source: string(r.Source)}
}

type CityListResponse struct {
	Cities []entities.City `json:"cities"`
	Source string          `json:"source"`
}

type BadgeResponse struct {
	Unread int `json:"unread"`
}

type CountResponse struct {
	Count int `json:"count"`
}

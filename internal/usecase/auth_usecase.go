package usecase

import (
	"context"
	"errors"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoSession          = errors.New("no active session")
)

const sessionTTL = 8 * time.Hour

// AuthUseCase issues login tokens and keeps the role-tagged session user in
// ephemeral storage. Authentication matches the back-office model: an
// active employee email is the credential; there are no passwords stored.
type AuthUseCase struct {
	employees *EmployeeUseCase
	sessions  interfaces.SessionStore
	secret    []byte
}

func NewAuthUseCase(employees *EmployeeUseCase, sessions interfaces.SessionStore, secret string) *AuthUseCase {
	return &AuthUseCase{employees: employees, sessions: sessions, secret: []byte(secret)}
}

type LoginResult struct {
	Token string               `json:"token"`
	User  entities.SessionUser `json:"user"`
}

func (u *AuthUseCase) Login(ctx context.Context, email string) (LoginResult, error) {
	employee, ok := u.employees.FindByEmail(ctx, email)
	if !ok || employee.Status != "ativo" {
		return LoginResult{}, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  employee.ID,
		"role": string(employee.Role),
		"name": employee.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return LoginResult{}, err
	}

	user := entities.SessionUser{
		ID:    employee.ID,
		Name:  employee.Name,
		Role:  employee.Role,
		Email: employee.Email,
	}
	if err := u.sessions.SetJSON(ctx, entities.KeySessionUserPrefix+employee.ID, user, sessionTTL); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, User: user}, nil
}

// ValidateToken parses the bearer token and returns the employee id it was
// issued for.
func (u *AuthUseCase) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// CurrentUser reads the session user back from ephemeral storage.
func (u *AuthUseCase) CurrentUser(ctx context.Context, employeeID string) (entities.SessionUser, error) {
	var user entities.SessionUser
	if err := u.sessions.GetJSON(ctx, entities.KeySessionUserPrefix+employeeID, &user); err != nil {
		return entities.SessionUser{}, ErrNoSession
	}
	return user, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, employeeID string) error {
	return u.sessions.Delete(ctx, entities.KeySessionUserPrefix+employeeID)
}

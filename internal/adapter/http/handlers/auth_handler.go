package handlers

import (
	"errors"
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	response "frota_backoffice/internal/adapter/http/dto/response"
	"frota_backoffice/internal/usecase"
	"frota_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// employeeIDKey is where the auth middleware stores the authenticated
// employee id in the gin context.
const employeeIDKey = "employeeID"

func CurrentEmployeeID(c *gin.Context) string {
	return c.GetString(employeeIDKey)
}

func SetCurrentEmployeeID(c *gin.Context, id string) {
	c.Set(employeeIDKey, id)
}

type AuthHandler struct {
	auth *usecase.AuthUseCase
}

func NewAuthHandler(auth *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), payload.ResolveEmail())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Unknown or inactive employee", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewInternalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLoginResult(result))
}

// Session returns the role-tagged session user for the bearer token.
func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), CurrentEmployeeID(c))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("NO_SESSION", "No active session", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), CurrentEmployeeID(c)); err != nil {
		appErr := pkg.NewInternalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

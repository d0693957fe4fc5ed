package routes

import (
	"net/http"
	"strings"

	"frota_backoffice/internal/adapter/http/handlers"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// authRequired validates the bearer token and stores the employee id for
// the handlers downstream.
func authRequired(auth *usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Missing bearer token"})
			return
		}
		employeeID, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"})
			return
		}
		handlers.SetCurrentEmployeeID(c, employeeID)
		c.Next()
	}
}

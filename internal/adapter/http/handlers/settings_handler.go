package handlers

import (
	"net/http"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *usecase.SettingsUseCase
}

func NewSettingsHandler(settings *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) GetSystem(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.System(c.Request.Context()))
}

func (h *SettingsHandler) PutSystem(c *gin.Context) {
	var payload entities.SystemSettings
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := h.settings.SaveSystem(c.Request.Context(), payload); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *SettingsHandler) GetNotification(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Notification(c.Request.Context()))
}

func (h *SettingsHandler) PutNotification(c *gin.Context) {
	var payload entities.NotificationSettings
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := h.settings.SaveNotification(c.Request.Context(), payload); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, payload)
}

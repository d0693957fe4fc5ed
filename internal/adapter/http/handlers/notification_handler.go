package handlers

import (
	"net/http"

	response "frota_backoffice/internal/adapter/http/dto/response"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *usecase.NotificationUseCase
}

func NewNotificationHandler(notifications *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	rows := h.notifications.List(c.Request.Context(), usecase.NotificationFilter{
		UnreadOnly: c.Query("unread") == "true",
		Priority:   c.Query("priority"),
	})
	c.JSON(http.StatusOK, rows)
}

// Badge is polled by the top bar.
func (h *NotificationHandler) Badge(c *gin.Context) {
	c.JSON(http.StatusOK, response.BadgeResponse{Unread: h.notifications.BadgeCount(c.Request.Context())})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	row, err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context()); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Scan triggers the derivation pass on demand, the same one the timer runs.
func (h *NotificationHandler) Scan(c *gin.Context) {
	created, err := h.notifications.Scan(c.Request.Context(), 3)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: created})
}

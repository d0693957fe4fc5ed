package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	response "frota_backoffice/internal/adapter/http/dto/response"
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chat *usecase.ChatUseCase
	auth *usecase.AuthUseCase
	logs *usecase.ChatLogUseCase
}

func NewChatHandler(chat *usecase.ChatUseCase, auth *usecase.AuthUseCase, logs *usecase.ChatLogUseCase) *ChatHandler {
	return &ChatHandler{chat: chat, auth: auth, logs: logs}
}

// viewer resolves the session user so the handler knows whether the
// conversation list is the management view or the employee view.
func (h *ChatHandler) viewer(c *gin.Context) (entities.SessionUser, bool) {
	user, err := h.auth.CurrentUser(c.Request.Context(), CurrentEmployeeID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "NO_SESSION", "message": "No active session"})
		return entities.SessionUser{}, false
	}
	return user, true
}

func (h *ChatHandler) Send(c *gin.Context) {
	user, ok := h.viewer(c)
	if !ok {
		return
	}
	var payload request.ChatSendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	msg, err := h.chat.Send(c.Request.Context(), payload.ToEntity(user.ID))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) Conversations(c *gin.Context) {
	user, ok := h.viewer(c)
	if !ok {
		return
	}
	conversations := h.chat.Conversations(c.Request.Context(), user.ID, user.Role.Management())
	c.JSON(http.StatusOK, conversations)
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	user, ok := h.viewer(c)
	if !ok {
		return
	}
	if err := h.chat.MarkConversationRead(c.Request.Context(), user.ID, c.Param("key")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	user, ok := h.viewer(c)
	if !ok {
		return
	}
	if err := h.chat.DeleteConversation(c.Request.Context(), user.ID, c.Param("key")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) Badge(c *gin.Context) {
	user, ok := h.viewer(c)
	if !ok {
		return
	}
	unread := h.chat.UnreadCount(c.Request.Context(), user.ID, user.Role.Management())
	c.JSON(http.StatusOK, response.BadgeResponse{Unread: unread})
}

// Logs returns the merged live+backup action log, newest first.
func (h *ChatHandler) Logs(c *gin.Context) {
	c.JSON(http.StatusOK, h.logs.MergedView(c.Request.Context()))
}

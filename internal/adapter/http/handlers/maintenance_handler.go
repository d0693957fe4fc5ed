package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenance *usecase.MaintenanceUseCase
}

func NewMaintenanceHandler(maintenance *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	rows := h.maintenance.List(c.Request.Context(), usecase.MaintenanceFilter{
		TruckID: c.Query("truckId"),
		Status:  c.Query("status"),
	})
	c.JSON(http.StatusOK, rows)
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var payload request.MaintenanceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	row, err := h.maintenance.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, row)
}

// Complete closes a maintenance; the truck returns to "disponivel" when it
// was the last pending one.
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	row, err := h.maintenance.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.maintenance.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TruckHandler struct {
	trucks *usecase.TruckUseCase
}

func NewTruckHandler(trucks *usecase.TruckUseCase) *TruckHandler {
	return &TruckHandler{trucks: trucks}
}

func (h *TruckHandler) List(c *gin.Context) {
	trucks := h.trucks.List(c.Request.Context(), usecase.TruckFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, trucks)
}

func (h *TruckHandler) Get(c *gin.Context) {
	truck, err := h.trucks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *TruckHandler) Create(c *gin.Context) {
	var payload request.TruckCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	truck, err := h.trucks.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, truck)
}

func (h *TruckHandler) Update(c *gin.Context) {
	var patch usecase.TruckPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	truck, err := h.trucks.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *TruckHandler) UpdateStatus(c *gin.Context) {
	var payload request.TruckStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	truck, err := h.trucks.UpdateStatus(c.Request.Context(), c.Param("id"), entities.TruckStatus(payload.Status))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *TruckHandler) Delete(c *gin.Context) {
	if err := h.trucks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TruckHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.trucks.Stats(c.Request.Context()))
}

package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveries *usecase.DeliveryUseCase
}

func NewDeliveryHandler(deliveries *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

func deliveryFilterFromQuery(c *gin.Context) usecase.DeliveryFilter {
	return usecase.DeliveryFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		DateStart: c.Query("dateStart"),
		DateEnd:   c.Query("dateEnd"),
		DriverID:  c.Query("driverId"),
	}
}

func (h *DeliveryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.deliveries.List(c.Request.Context(), deliveryFilterFromQuery(c)))
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	delivery, err := h.deliveries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *DeliveryHandler) Create(c *gin.Context) {
	var payload request.DeliveryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	delivery, err := h.deliveries.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

func (h *DeliveryHandler) Update(c *gin.Context) {
	var patch usecase.DeliveryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	delivery, err := h.deliveries.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *DeliveryHandler) Delete(c *gin.Context) {
	if err := h.deliveries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterMoment records a driver event on one delivery and transitions it.
func (h *DeliveryHandler) RegisterMoment(c *gin.Context) {
	var payload request.MomentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	delivery, err := h.deliveries.RegisterMoment(c.Request.Context(), c.Param("id"), entities.MomentType(payload.Type))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *DeliveryHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.deliveries.Stats(c.Request.Context(), deliveryFilterFromQuery(c)))
}

package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	routes *usecase.RouteUseCase
}

func NewRouteHandler(routes *usecase.RouteUseCase) *RouteHandler {
	return &RouteHandler{routes: routes}
}

func (h *RouteHandler) List(c *gin.Context) {
	routes := h.routes.List(c.Request.Context(), usecase.RouteFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) Get(c *gin.Context) {
	route, err := h.routes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) Create(c *gin.Context) {
	var payload request.RouteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	route, err := h.routes.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) Update(c *gin.Context) {
	var patch usecase.RoutePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	route, err := h.routes.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) Delete(c *gin.Context) {
	if err := h.routes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterMoment appends a driver event to the route feed and cascades the
// status change onto its deliveries.
func (h *RouteHandler) RegisterMoment(c *gin.Context) {
	var payload request.MomentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	route, err := h.routes.RegisterMoment(c.Request.Context(), c.Param("id"), entities.Moment{
		Type:     entities.MomentType(payload.Type),
		DriverID: payload.DriverID,
		Note:     payload.Note,
	})
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, route)
}

package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	response "frota_backoffice/internal/adapter/http/dto/response"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CityHandler struct {
	cities *usecase.CityUseCase
}

func NewCityHandler(cities *usecase.CityUseCase) *CityHandler {
	return &CityHandler{cities: cities}
}

func (h *CityHandler) List(c *gin.Context) {
	cities, source := h.cities.List(c.Request.Context())
	c.JSON(http.StatusOK, response.CityListResponse{Cities: cities, Source: string(source)})
}

func (h *CityHandler) Create(c *gin.Context) {
	var payload request.CityCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	result, err := h.cities.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCityResult(result))
}

func (h *CityHandler) Update(c *gin.Context) {
	var payload request.CityUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	result, err := h.cities.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.State)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCityResult(result))
}

func (h *CityHandler) Delete(c *gin.Context) {
	source, err := h.cities.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"source": string(source)})
}

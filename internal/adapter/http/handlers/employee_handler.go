package handlers

import (
	"net/http"

	request "frota_backoffice/internal/adapter/http/dto/request"
	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employees *usecase.EmployeeUseCase
}

func NewEmployeeHandler(employees *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees := h.employees.List(c.Request.Context(), usecase.EmployeeFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
	})
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.employees.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var payload request.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	employee, err := h.employees.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var patch usecase.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	employee, err := h.employees.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

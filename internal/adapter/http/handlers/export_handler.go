package handlers

import (
	"fmt"
	"net/http"

	"frota_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exports *usecase.ExportUseCase
}

func NewExportHandler(exports *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// CSV streams the collection as an attachment named after it.
func (h *ExportHandler) CSV(c *gin.Context) {
	collection := c.Param("collection")
	data, err := h.exports.CSV(c.Request.Context(), collection)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", collection))
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *ExportHandler) JSON(c *gin.Context) {
	collection := c.Param("collection")
	data, err := h.exports.JSON(c.Request.Context(), collection)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", collection))
	c.Data(http.StatusOK, "application/json", data)
}

package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/sellerdesk/internal/server/http/dto"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

// ImportHandler manages bulk order imports.
type ImportHandler struct {
	facade OrderFacade
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(facade OrderFacade) *ImportHandler {
	return &ImportHandler{facade: facade}
}

// Upload handles POST /api/orders/import. The file is validated locally
// first; an invalid file is rejected with the full validation report and is
// never forwarded to the order service.
func (h *ImportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}

	meta := usecase.FileMeta{Name: fileHeader.Filename, Size: fileHeader.Size}
	result, receipt, err := h.facade.ImportOrders(c.Request.Context(), meta, content)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	response := dto.ImportResponse{
		Valid:    result.Valid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	}

	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	if receipt != nil {
		response.OrdersProcessed = receipt.OrdersProcessed
		response.Message = receipt.Message
	}
	c.JSON(http.StatusOK, response)
}

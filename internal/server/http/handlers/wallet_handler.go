package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/server/http/dto"
)

// WalletHandler manages wallet history endpoints.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler constructs WalletHandler.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// List handles GET /api/wallet/bills.
func (h *WalletHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	filter := model.TransactionFilter{
		Page:      page,
		PageSize:  pageSize,
		BillType:  c.Query("bill_type"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		OrderID:   c.Query("order_id"),
	}

	result, err := h.facade.Transactions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	bills := make([]dto.TransactionResponse, 0, len(result.Bills))
	for _, bill := range result.Bills {
		bills = append(bills, toTransactionResponse(bill))
	}

	c.JSON(http.StatusOK, dto.TransactionPageResponse{
		Bills: bills,
		Total: result.Total,
		Page:  result.Page,
		Pages: result.Pages,
	})
}

// Detail handles GET /api/wallet/bills/:id.
func (h *WalletHandler) Detail(c *gin.Context) {
	billID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || billID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bill id must be a positive integer"})
		return
	}

	bill, err := h.facade.TransactionByID(c.Request.Context(), billID)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(*bill))
}

func toTransactionResponse(bill model.WalletTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        bill.ID,
		BillType:  bill.BillType,
		Amount:    bill.Amount,
		OrderID:   bill.OrderID,
		CreatedAt: bill.CreatedAt,
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/sellerdesk/internal/dispatch"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/server/http/dto"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

// OrdersHandler manages the orders view endpoints.
type OrdersHandler struct {
	facade OrderFacade
}

// NewOrdersHandler constructs OrdersHandler.
func NewOrdersHandler(facade OrderFacade) *OrdersHandler {
	return &OrdersHandler{facade: facade}
}

// List handles GET /api/orders. It issues the retrieval for the requested
// tab and renders the resulting view. When the retrieval fails the previous
// page is still rendered alongside the error.
func (h *OrdersHandler) List(c *gin.Context) {
	customerID := CurrentCustomerID(c)

	tab := model.Tab(c.DefaultQuery("tab", string(model.TabAll)))
	if !tab.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tab"})
		return
	}

	raw := rawFilterInput(c)
	err := h.facade.FetchOrders(c.Request.Context(), customerID, tab, raw)
	snapshot := h.facade.OrdersSnapshot(customerID)

	response := toOrderPageResponse(snapshot)
	if err != nil {
		response.Error = err.Error()
		c.JSON(errorStatus(err), response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Confirmed handles GET /api/orders/confirmed. The listing is bound to no
// tab and leaves the customer's view untouched.
func (h *OrdersHandler) Confirmed(c *gin.Context) {
	page, err := h.facade.ConfirmedOrders(c.Request.Context(), rawFilterInput(c))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	rows := make([]dto.OrderRowResponse, 0, len(page.Orders))
	for _, order := range page.Orders {
		rows = append(rows, toOrderRowResponse(order))
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      rows,
		"total_count": page.TotalCount,
	})
}

// Detail handles GET /api/orders/:id.
func (h *OrdersHandler) Detail(c *gin.Context) {
	order, err := h.facade.OrderDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toOrderDetailResponse(*order))
}

func rawFilterInput(c *gin.Context) usecase.RawFilterInput {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return usecase.RawFilterInput{
		Page:              page,
		PageSize:          pageSize,
		FromDate:          c.Query("from_date"),
		ToDate:            c.Query("to_date"),
		SearchTerm:        c.Query("search"),
		MarketplaceSource: c.Query("source"),
		SortBy:            c.Query("sort"),
	}
}

func toOrderRowResponse(order model.Order) dto.OrderRowResponse {
	status := usecase.ResolveStatus(order)

	products := make([]dto.LineItemResponse, 0, len(order.Products))
	for _, item := range order.Products {
		products = append(products, dto.LineItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return dto.OrderRowResponse{
		OrderID:     order.OrderID,
		OrderSerial: order.OrderSerial,
		DisplayStatus: dto.DisplayStatusResponse{
			Label:    status.Label,
			Severity: string(status.Severity),
		},
		Products:      products,
		DatePurchased: order.DatePurchased,
		Amount:        usecase.OrderAmount(order),
		Tracking:      order.TrackingNumber,
	}
}

func toOrderDetailResponse(order model.Order) dto.OrderDetailResponse {
	return dto.OrderDetailResponse{
		OrderRowResponse: toOrderRowResponse(order),
		DeliveryName:     order.DeliveryName,
		DeliveryAddress:  order.DeliveryAddress,
		DeliveryPhone:    order.DeliveryPhone,
		Subtotal:         order.Subtotal,
		ShippingCost:     order.ShippingCost,
		Total:            order.Total,
	}
}

func toOrderPageResponse(snapshot dispatch.Snapshot) dto.OrderPageResponse {
	rows := make([]dto.OrderRowResponse, 0, len(snapshot.Orders))
	for _, order := range snapshot.Orders {
		rows = append(rows, toOrderRowResponse(order))
	}

	response := dto.OrderPageResponse{
		State:      string(snapshot.State),
		Tab:        string(snapshot.Tab),
		Orders:     rows,
		TotalCount: snapshot.TotalCount,
		RecentOnly: snapshot.RecentOnly,
	}
	if snapshot.Err != nil {
		response.Error = snapshot.Err.Error()
	}
	return response
}

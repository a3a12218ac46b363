package dto

import "time"

// DisplayStatusResponse is the resolved badge for one order row.
type DisplayStatusResponse struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// OrderRowResponse is one order as rendered in the orders table.
type OrderRowResponse struct {
	OrderID       int64                 `json:"order_id"`
	OrderSerial   string                `json:"order_serial"`
	DisplayStatus DisplayStatusResponse `json:"display_status"`
	Products      []LineItemResponse    `json:"products"`
	DatePurchased time.Time             `json:"date_purchased"`
	Amount        float64               `json:"amount"`
	Tracking      string                `json:"tracking_number,omitempty"`
}

// LineItemResponse is a single product position.
type LineItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// OrderPageResponse is the customer's current orders view.
type OrderPageResponse struct {
	State      string             `json:"state"`
	Tab        string             `json:"tab"`
	Orders     []OrderRowResponse `json:"orders"`
	TotalCount int                `json:"total_count"`
	RecentOnly bool               `json:"recent_only"`
	Error      string             `json:"error,omitempty"`
}

// OrderDetailResponse is the full single-order view.
type OrderDetailResponse struct {
	OrderRowResponse
	DeliveryName    string  `json:"delivery_name"`
	DeliveryAddress string  `json:"delivery_address"`
	DeliveryPhone   string  `json:"delivery_phone"`
	Subtotal        float64 `json:"subtotal"`
	ShippingCost    float64 `json:"shipping_cost"`
	Total           float64 `json:"total"`
}

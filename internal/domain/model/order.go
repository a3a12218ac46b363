package model

import "time"

// OrderStatus describes the top-level order lifecycle axis.
type OrderStatus string

const (
	OrderStatusOrdered    OrderStatus = "OS"
	OrderStatusProcessing OrderStatus = "OB"
	OrderStatusCancelled  OrderStatus = "OC"
)

// PaymentStatus describes the payment axis.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "PU"
	PaymentStatusPaid   PaymentStatus = "PD"
)

// ShippingStatus describes the shipping axis. Empty means the axis is unset.
type ShippingStatus string

const (
	ShippingStatusNone       ShippingStatus = ""
	ShippingStatusUnshipped  ShippingStatus = "SU"
	ShippingStatusProcessing ShippingStatus = "SP"
	ShippingStatusShipped    ShippingStatus = "SS"
)

// ReturnStatus describes the return axis. Empty means no return activity.
type ReturnStatus string

const (
	ReturnStatusNone      ReturnStatus = ""
	ReturnStatusAwaiting  ReturnStatus = "RA"
	ReturnStatusRequested ReturnStatus = "RR"
	ReturnStatusCompleted ReturnStatus = "RC"
	ReturnStatusShipped   ReturnStatus = "RS"
	ReturnStatusDenied    ReturnStatus = "RD"
)

// DisputeStatus describes the dispute axis. Both "DN" and empty mean no dispute.
type DisputeStatus string

const (
	DisputeStatusNone     DisputeStatus = "DN"
	DisputeStatusPending  DisputeStatus = "DP"
	DisputeStatusDenied   DisputeStatus = "DD"
	DisputeStatusAccepted DisputeStatus = "AD"
)

// LineItem is a single product position inside an order.
type LineItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// Order is a marketplace order as returned by the order service. All five
// status axes evolve independently on the backend; this service only reads
// them.
type Order struct {
	OrderID         int64          `json:"order_id"`
	OrderSerial     string         `json:"order_serial"`
	Status          OrderStatus    `json:"status"`
	PaymentStatus   PaymentStatus  `json:"status_payment"`
	ShippingStatus  ShippingStatus `json:"status_shipping"`
	ReturnStatus    ReturnStatus   `json:"status_return"`
	DisputeStatus   DisputeStatus  `json:"status_dispute"`
	Products        []LineItem     `json:"products"`
	DatePurchased   time.Time      `json:"date_purchased"`
	DeliveryName    string         `json:"delivery_name"`
	DeliveryAddress string         `json:"delivery_address"`
	DeliveryPhone   string         `json:"delivery_phone"`
	TrackingNumber  string         `json:"tracking_number,omitempty"`
	Subtotal        float64        `json:"subtotal,omitempty"`
	ShippingCost    float64        `json:"shipping_cost,omitempty"`
	Total           float64        `json:"total,omitempty"`
}

// OrderPage couples one retrieved page with the total match count. The two
// values are always produced and consumed together.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	TotalCount int     `json:"total_count"`
}

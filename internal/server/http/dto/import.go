package dto

// ImportResponse reports local validation and, when the file was uploaded,
// the order service's receipt.
type ImportResponse struct {
	Valid           bool     `json:"valid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	OrdersProcessed int      `json:"orders_processed,omitempty"`
	Message         string   `json:"message,omitempty"`
}

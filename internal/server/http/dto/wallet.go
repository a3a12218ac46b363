package dto

import "time"

// TransactionResponse is a single wallet bill entry.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	BillType  string    `json:"bill_type"`
	Amount    float64   `json:"amount"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionPageResponse is one page of wallet history.
type TransactionPageResponse struct {
	Bills []TransactionResponse `json:"bills"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Pages int                   `json:"pages"`
}

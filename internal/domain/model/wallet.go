package model

import "time"

// WalletTransaction is a single bill entry from the bill service.
type WalletTransaction struct {
	ID        int64     `json:"id"`
	BillType  string    `json:"bill_type"`
	Amount    float64   `json:"amount"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionFilter narrows the wallet transaction listing.
type TransactionFilter struct {
	Page      int
	PageSize  int
	BillType  string
	StartDate string
	EndDate   string
	OrderID   string
}

// TransactionPage is one page of wallet history.
type TransactionPage struct {
	Bills []WalletTransaction `json:"bills"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Pages int                 `json:"pages"`
}

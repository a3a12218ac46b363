package usecase

import "github.com/sellerdesk/sellerdesk/internal/domain/model"

// AggregateAmount sums quantity times unit price across line items. An empty
// or nil slice yields zero. No currency rounding is applied here; formatting
// belongs to the display layer.
func AggregateAmount(items []model.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// OrderAmount returns the authoritative order total when the backend supplied
// one, falling back to line-item aggregation otherwise.
func OrderAmount(order model.Order) float64 {
	if order.Total > 0 {
		return order.Total
	}
	return AggregateAmount(order.Products)
}

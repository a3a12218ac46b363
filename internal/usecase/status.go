package usecase

import "github.com/sellerdesk/sellerdesk/internal/domain/model"

// ResolveStatus collapses the five status axes of an order into a single
// display status. Rules are evaluated in priority order and the first match
// wins: cancellation terminates everything, an unpaid order blocks on
// payment regardless of downstream activity, return and dispute activity
// outrank routine shipping progress, and the base order status is the final
// fallback. Every axis switch carries a default arm, so the function is
// total for any input.
func ResolveStatus(order model.Order) model.DisplayStatus {
	if order.Status == model.OrderStatusCancelled {
		return model.DisplayStatus{Label: "Cancelled", Severity: model.SeverityDanger}
	}

	if order.PaymentStatus == model.PaymentStatusUnpaid {
		return model.DisplayStatus{Label: "Awaiting Payment", Severity: model.SeverityNeutral}
	}

	if order.ReturnStatus != model.ReturnStatusNone {
		return resolveReturn(order.ReturnStatus)
	}

	if order.DisputeStatus != model.DisputeStatusNone && order.DisputeStatus != "" {
		return resolveDispute(order.DisputeStatus)
	}

	if order.ShippingStatus != model.ShippingStatusNone {
		return resolveShipping(order.ShippingStatus)
	}

	switch order.Status {
	case model.OrderStatusOrdered:
		return model.DisplayStatus{Label: "Confirmed", Severity: model.SeveritySuccess}
	case model.OrderStatusProcessing:
		return model.DisplayStatus{Label: "Processing", Severity: model.SeverityInfo}
	default:
		return model.DisplayStatus{Label: "Processing", Severity: model.SeverityInfo}
	}
}

func resolveReturn(status model.ReturnStatus) model.DisplayStatus {
	switch status {
	case model.ReturnStatusAwaiting:
		return model.DisplayStatus{Label: "Return Awaiting", Severity: model.SeverityWarning}
	case model.ReturnStatusRequested:
		return model.DisplayStatus{Label: "Return Requested", Severity: model.SeverityInfo}
	case model.ReturnStatusCompleted:
		return model.DisplayStatus{Label: "Return Completed", Severity: model.SeveritySuccess}
	case model.ReturnStatusShipped:
		return model.DisplayStatus{Label: "Return Shipped", Severity: model.SeverityInfo}
	case model.ReturnStatusDenied:
		return model.DisplayStatus{Label: "Return Denied", Severity: model.SeverityDanger}
	default:
		return model.DisplayStatus{Label: "Return In Progress", Severity: model.SeverityWarning}
	}
}

func resolveDispute(status model.DisputeStatus) model.DisplayStatus {
	switch status {
	case model.DisputeStatusPending:
		return model.DisplayStatus{Label: "Dispute Pending", Severity: model.SeverityWarning}
	case model.DisputeStatusDenied:
		return model.DisplayStatus{Label: "Dispute Denied", Severity: model.SeverityDanger}
	case model.DisputeStatusAccepted:
		return model.DisplayStatus{Label: "Dispute Accepted", Severity: model.SeveritySuccess}
	default:
		return model.DisplayStatus{Label: "Dispute Open", Severity: model.SeverityWarning}
	}
}

func resolveShipping(status model.ShippingStatus) model.DisplayStatus {
	switch status {
	case model.ShippingStatusUnshipped:
		return model.DisplayStatus{Label: "Awaiting Shipment", Severity: model.SeverityWarning}
	case model.ShippingStatusProcessing:
		return model.DisplayStatus{Label: "Preparing Shipment", Severity: model.SeverityInfo}
	case model.ShippingStatusShipped:
		return model.DisplayStatus{Label: "Shipped", Severity: model.SeverityInfo}
	default:
		return model.DisplayStatus{Label: "Processing", Severity: model.SeverityInfo}
	}
}

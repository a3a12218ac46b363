package model

// Tab identifies one of the dashboard order views.
type Tab string

const (
	TabAll             Tab = "all"
	TabAbnormal        Tab = "abnormal"
	TabAwaitingPayment Tab = "awaiting-payment"
	TabProcessing      Tab = "processing"
	TabShipped         Tab = "shipped"
	TabTicketed        Tab = "ticketed"
	TabCancelled       Tab = "cancelled"
)

// Valid reports whether the tab belongs to the fixed enumeration.
func (t Tab) Valid() bool {
	switch t {
	case TabAll, TabAbnormal, TabAwaitingPayment, TabProcessing, TabShipped, TabTicketed, TabCancelled:
		return true
	}
	return false
}

// Operation names one retrieval operation of the order service. The
// confirmed operation is addressable but bound to no tab.
type Operation string

const (
	OperationAll              Operation = "all"
	OperationConfirmed        Operation = "confirmed"
	OperationUnpaid           Operation = "unpaid"
	OperationAwaitingShipment Operation = "awaiting-shipment"
	OperationShipped          Operation = "shipped"
	OperationTicketed         Operation = "ticketed"
	OperationCancelled        Operation = "cancelled"
	OperationAbnormal         Operation = "abnormal"
)

// MarketplaceAll is the UI sentinel meaning "no marketplace filter". It must
// never reach the backend; the filter builder strips it.
const MarketplaceAll = "ALL"

// SortLastModified is the default sort order.
const SortLastModified = "last_modified"

// FilterSet is a canonical, backend-ready parameter set built once per
// filter-change event. Optional fields are empty when absent; no sentinel
// placeholders survive construction.
type FilterSet struct {
	Page              int
	PageSize          int
	FromDate          string
	ToDate            string
	SearchTerm        string
	MarketplaceSource string
	SortBy            string
	Tab               Tab
}

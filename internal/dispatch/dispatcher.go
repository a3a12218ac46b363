package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

// Retriever fetches one page of orders for a retrieval operation. The order
// service adapter implements it.
type Retriever interface {
	Retrieve(ctx context.Context, op model.Operation, filters model.FilterSet) (*model.OrderPage, error)
}

// ViewState names the lifecycle stage of one view's query.
type ViewState string

const (
	StateIdle    ViewState = "idle"
	StateLoading ViewState = "loading"
	StateLoaded  ViewState = "loaded"
	StateFailed  ViewState = "failed"
)

// recentWindow is the client-side "recent only" cutoff.
const recentWindow = 24 * time.Hour

// Snapshot is what the display layer renders for one view. Orders and
// TotalCount always originate from the same response.
type Snapshot struct {
	State      ViewState
	Tab        model.Tab
	Orders     []model.Order
	TotalCount int
	Err        error
	RecentOnly bool
}

type view struct {
	seq        uint64
	state      ViewState
	tab        model.Tab
	raw        usecase.RawFilterInput
	orders     []model.Order
	total      int
	err        error
	recentOnly bool
}

// Dispatcher routes tab-scoped retrieval requests to the order service and
// reconciles responses against in-flight staleness. Each customer owns one
// view; a monotonic per-view sequence number guarantees that of any set of
// overlapping requests only the most recently issued one may become visible.
// In-flight requests are not cancelled, their results are discarded.
type Dispatcher struct {
	retriever Retriever
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	views map[int64]*view
}

// New constructs a dispatcher over the given retriever.
func New(retriever Retriever, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		retriever: retriever,
		logger:    logger,
		now:       time.Now,
		views:     make(map[int64]*view),
	}
}

func operationForTab(tab model.Tab) (model.Operation, bool) {
	switch tab {
	case model.TabAll:
		return model.OperationAll, true
	case model.TabAbnormal:
		return model.OperationAbnormal, true
	case model.TabAwaitingPayment:
		return model.OperationUnpaid, true
	case model.TabProcessing:
		return model.OperationAwaitingShipment, true
	case model.TabShipped:
		return model.OperationShipped, true
	case model.TabTicketed:
		return model.OperationTicketed, true
	case model.TabCancelled:
		return model.OperationCancelled, true
	default:
		return "", false
	}
}

func (d *Dispatcher) viewLocked(customerID int64) *view {
	v, ok := d.views[customerID]
	if !ok {
		v = &view{state: StateIdle}
		d.views[customerID] = v
	}
	return v
}

// Fetch normalizes the raw filter input, routes the tab to its retrieval
// operation and issues it. The response replaces the displayed orders and
// total count together, unless a newer request was issued meanwhile, in
// which case it is discarded silently. On failure the previously displayed
// page is retained and the error is surfaced to the caller.
func (d *Dispatcher) Fetch(ctx context.Context, customerID int64, tab model.Tab, raw usecase.RawFilterInput) error {
	op, ok := operationForTab(tab)
	if !ok {
		return fmt.Errorf("unknown tab %q", tab)
	}

	filters := usecase.BuildFilterSet(raw, tab)

	d.mu.Lock()
	v := d.viewLocked(customerID)
	v.seq++
	seq := v.seq
	v.state = StateLoading
	v.tab = tab
	v.raw = raw
	d.mu.Unlock()

	page, err := d.retriever.Retrieve(ctx, op, filters)

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != v.seq {
		d.logger.Debug("discarding stale response",
			slog.Int64("customer", customerID),
			slog.String("tab", string(tab)),
			slog.Uint64("seq", seq),
			slog.Uint64("latest", v.seq),
		)
		return nil
	}

	if err != nil {
		v.state = StateFailed
		v.err = err
		return err
	}

	v.orders = page.Orders
	v.total = page.TotalCount
	v.state = StateLoaded
	v.err = nil
	return nil
}

// Refresh re-issues the last query of the customer's view. Customers that
// never fetched are skipped.
func (d *Dispatcher) Refresh(ctx context.Context, customerID int64) error {
	d.mu.Lock()
	v, ok := d.views[customerID]
	if !ok || v.tab == "" {
		d.mu.Unlock()
		return nil
	}
	tab, raw := v.tab, v.raw
	d.mu.Unlock()

	return d.Fetch(ctx, customerID, tab, raw)
}

// Confirmed retrieves the confirmed-orders operation directly. It is bound
// to no tab and leaves view state untouched.
func (d *Dispatcher) Confirmed(ctx context.Context, raw usecase.RawFilterInput) (*model.OrderPage, error) {
	filters := usecase.BuildFilterSet(raw, model.TabAll)
	return d.retriever.Retrieve(ctx, model.OperationConfirmed, filters)
}

// SetRecentOnly toggles the client-side recency filter for the customer's
// view. The filter applies to the already-retrieved page, not the backing
// result set.
func (d *Dispatcher) SetRecentOnly(customerID int64, recentOnly bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewLocked(customerID).recentOnly = recentOnly
}

// ActiveCustomers lists customers with a view that has issued at least one
// query.
func (d *Dispatcher) ActiveCustomers() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]int64, 0, len(d.views))
	for id, v := range d.views {
		if v.tab != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Snapshot returns the customer's current view for display. With recent-only
// active, the displayed page is narrowed to orders purchased within the last
// 24 hours; the total count still reflects the backend result set.
func (d *Dispatcher) Snapshot(customerID int64) Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.views[customerID]
	if !ok {
		return Snapshot{State: StateIdle, Orders: []model.Order{}}
	}

	orders := make([]model.Order, 0, len(v.orders))
	if v.recentOnly {
		cutoff := d.now().Add(-recentWindow)
		for _, order := range v.orders {
			if order.DatePurchased.After(cutoff) {
				orders = append(orders, order)
			}
		}
	} else {
		orders = append(orders, v.orders...)
	}

	return Snapshot{
		State:      v.state,
		Tab:        v.tab,
		Orders:     orders,
		TotalCount: v.total,
		Err:        v.err,
		RecentOnly: v.recentOnly,
	}
}

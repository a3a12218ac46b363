package test

import (
	"context"
	"sync"

	"github.com/sellerdesk/sellerdesk/internal/adapter/orderapi"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
)

// OrderClientStub provides controllable behaviour for the order service client.
type OrderClientStub struct {
	RetrieveFn  func(context.Context, model.Operation, model.FilterSet) (*model.OrderPage, error)
	OrderByIDFn func(context.Context, string) (*model.Order, error)
	UploadFn    func(context.Context, string, []byte) (*orderapi.UploadReceipt, error)

	mu         sync.Mutex
	Retrievals []model.Operation
}

// Retrieve records the operation and returns the configured page.
func (s *OrderClientStub) Retrieve(ctx context.Context, op model.Operation, filters model.FilterSet) (*model.OrderPage, error) {
	s.mu.Lock()
	s.Retrievals = append(s.Retrievals, op)
	s.mu.Unlock()
	if s.RetrieveFn != nil {
		return s.RetrieveFn(ctx, op, filters)
	}
	return &model.OrderPage{Orders: []model.Order{}}, nil
}

// OrderByID delegates to the override or returns a default order.
func (s *OrderClientStub) OrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, orderID)
	}
	return &model.Order{OrderID: 1, Status: model.OrderStatusOrdered, PaymentStatus: model.PaymentStatusPaid}, nil
}

// Upload delegates to the override or accepts the file.
func (s *OrderClientStub) Upload(ctx context.Context, filename string, content []byte) (*orderapi.UploadReceipt, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, content)
	}
	return &orderapi.UploadReceipt{Accepted: true}, nil
}

// BillClientStub simulates the bill service client.
type BillClientStub struct {
	TransactionsFn func(context.Context, model.TransactionFilter) (*model.TransactionPage, error)
	ByIDFn         func(context.Context, int64) (*model.WalletTransaction, error)
}

// Transactions returns the configured page or an empty one.
func (s *BillClientStub) Transactions(ctx context.Context, filter model.TransactionFilter) (*model.TransactionPage, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, filter)
	}
	return &model.TransactionPage{Bills: []model.WalletTransaction{}}, nil
}

// TransactionByID returns the configured bill or a default one.
func (s *BillClientStub) TransactionByID(ctx context.Context, billID int64) (*model.WalletTransaction, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, billID)
	}
	return &model.WalletTransaction{ID: billID}, nil
}

// RefreshFacadeStub mimics refresher interactions with the dashboard facade.
type RefreshFacadeStub struct {
	Customers []int64
	RefreshFn func(context.Context, int64) error

	mu        sync.Mutex
	Refreshed []int64
}

// ActiveCustomers returns the configured customer list.
func (s *RefreshFacadeStub) ActiveCustomers() []int64 {
	return append([]int64(nil), s.Customers...)
}

// RefreshOrders records refresh invocations.
func (s *RefreshFacadeStub) RefreshOrders(ctx context.Context, customerID int64) error {
	s.mu.Lock()
	s.Refreshed = append(s.Refreshed, customerID)
	s.mu.Unlock()
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, customerID)
	}
	return nil
}

// DetailCacheStub is an in-memory order detail cache for tests.
type DetailCacheStub struct {
	mu      sync.Mutex
	Entries map[string]*model.Order
}

// GetOrder reports a hit only for pre-seeded entries.
func (s *DetailCacheStub) GetOrder(ctx context.Context, orderID string) (*model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Entries[orderID]
	return order, ok
}

// SetOrder stores the order in-memory.
func (s *DetailCacheStub) SetOrder(ctx context.Context, orderID string, order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Entries == nil {
		s.Entries = make(map[string]*model.Order)
	}
	s.Entries[orderID] = order
}

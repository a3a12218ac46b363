package app

import (
	"context"
	"errors"
	"strconv"

	"github.com/sellerdesk/sellerdesk/internal/adapter/billapi"
	"github.com/sellerdesk/sellerdesk/internal/adapter/orderapi"
	"github.com/sellerdesk/sellerdesk/internal/dispatch"
	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/domain/repository"
	"github.com/sellerdesk/sellerdesk/internal/pkg/auth"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

// DetailCache keeps order details between repeated detail views.
type DetailCache interface {
	GetOrder(ctx context.Context, orderID string) (*model.Order, bool)
	SetOrder(ctx context.Context, orderID string, order *model.Order)
}

// DashboardFacade is the application surface the HTTP layer and the refresh
// worker talk to.
type DashboardFacade struct {
	strategy        auth.Strategy
	dispatcher      *dispatch.Dispatcher
	orders          orderapi.Client
	bills           billapi.Client
	cache           DetailCache
	preferences     repository.PreferenceRepository
	validator       *usecase.CSVImportValidator
	defaultPageSize int
}

// NewDashboardFacade wires the facade from its collaborators.
func NewDashboardFacade(
	strategy auth.Strategy,
	dispatcher *dispatch.Dispatcher,
	orders orderapi.Client,
	bills billapi.Client,
	cache DetailCache,
	preferences repository.PreferenceRepository,
	validator *usecase.CSVImportValidator,
	defaultPageSize int,
) *DashboardFacade {
	if defaultPageSize <= 0 {
		defaultPageSize = usecase.DefaultPageSize
	}
	return &DashboardFacade{
		strategy:        strategy,
		dispatcher:      dispatcher,
		orders:          orders,
		bills:           bills,
		cache:           cache,
		preferences:     preferences,
		validator:       validator,
		defaultPageSize: defaultPageSize,
	}
}

// ParseToken validates a session token and returns the customer it names.
func (f *DashboardFacade) ParseToken(token string) (int64, error) {
	return f.strategy.ParseToken(token)
}

// FetchOrders issues a tab-scoped retrieval for the customer's view.
func (f *DashboardFacade) FetchOrders(ctx context.Context, customerID int64, tab model.Tab, raw usecase.RawFilterInput) error {
	return f.dispatcher.Fetch(ctx, customerID, tab, raw)
}

// OrdersSnapshot returns the customer's current view for rendering.
func (f *DashboardFacade) OrdersSnapshot(customerID int64) dispatch.Snapshot {
	return f.dispatcher.Snapshot(customerID)
}

// RefreshOrders re-issues the customer's last order query.
func (f *DashboardFacade) RefreshOrders(ctx context.Context, customerID int64) error {
	return f.dispatcher.Refresh(ctx, customerID)
}

// ActiveCustomers lists customers with a live orders view.
func (f *DashboardFacade) ActiveCustomers() []int64 {
	return f.dispatcher.ActiveCustomers()
}

// ConfirmedOrders retrieves the confirmed-orders listing outside any view.
func (f *DashboardFacade) ConfirmedOrders(ctx context.Context, raw usecase.RawFilterInput) (*model.OrderPage, error) {
	return f.dispatcher.Confirmed(ctx, raw)
}

// OrderDetail returns a single order, serving repeated views from the cache.
// The resolved display status is attached by the HTTP layer, not here.
func (f *DashboardFacade) OrderDetail(ctx context.Context, orderID string) (*model.Order, error) {
	if order, ok := f.cache.GetOrder(ctx, orderID); ok {
		return order, nil
	}

	order, err := f.orders.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	f.cache.SetOrder(ctx, orderID, order)
	return order, nil
}

// ImportOrders validates a bulk import file locally and uploads it only when
// validation passes. An invalid file yields the validation result with no
// upload attempt and no error.
func (f *DashboardFacade) ImportOrders(ctx context.Context, meta usecase.FileMeta, content []byte) (usecase.ImportValidationResult, *orderapi.UploadReceipt, error) {
	result := f.validator.Validate(meta, string(content))
	if !result.Valid {
		return result, nil, nil
	}

	receipt, err := f.orders.Upload(ctx, meta.Name, content)
	if err != nil {
		return result, nil, err
	}
	return result, receipt, nil
}

// Transactions returns one page of the customer's wallet history.
func (f *DashboardFacade) Transactions(ctx context.Context, filter model.TransactionFilter) (*model.TransactionPage, error) {
	return f.bills.Transactions(ctx, filter)
}

// TransactionByID returns a single bill entry.
func (f *DashboardFacade) TransactionByID(ctx context.Context, billID int64) (*model.WalletTransaction, error) {
	return f.bills.TransactionByID(ctx, billID)
}

// Preferences returns the customer's stored dashboard preferences, falling
// back to defaults for customers that never saved any.
func (f *DashboardFacade) Preferences(ctx context.Context, customerID int64) (*model.Preferences, error) {
	prefs, err := f.preferences.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.Preferences{
				CustomerID:      customerID,
				DefaultPageSize: f.defaultPageSize,
			}, nil
		}
		return nil, err
	}
	return prefs, nil
}

// SavePreferences persists the customer's preferences and propagates the
// recency filter into the live orders view.
func (f *DashboardFacade) SavePreferences(ctx context.Context, prefs *model.Preferences) (*model.Preferences, error) {
	if prefs.DefaultPageSize <= 0 {
		prefs.DefaultPageSize = f.defaultPageSize
	}

	saved, err := f.preferences.Save(ctx, prefs)
	if err != nil {
		return nil, err
	}

	f.dispatcher.SetRecentOnly(saved.CustomerID, saved.RecentOnly)
	return saved, nil
}

// ParseBillID converts a path segment into a bill identifier.
func ParseBillID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainErrors.ErrValidation
	}
	return id, nil
}

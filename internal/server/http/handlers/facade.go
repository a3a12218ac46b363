package handlers

import (
	"context"

	"github.com/sellerdesk/sellerdesk/internal/adapter/orderapi"
	"github.com/sellerdesk/sellerdesk/internal/dispatch"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

// SessionFacade describes token verification required by the auth middleware.
type SessionFacade interface {
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order view operations exposed via HTTP.
type OrderFacade interface {
	FetchOrders(ctx context.Context, customerID int64, tab model.Tab, raw usecase.RawFilterInput) error
	OrdersSnapshot(customerID int64) dispatch.Snapshot
	ConfirmedOrders(ctx context.Context, raw usecase.RawFilterInput) (*model.OrderPage, error)
	OrderDetail(ctx context.Context, orderID string) (*model.Order, error)
	ImportOrders(ctx context.Context, meta usecase.FileMeta, content []byte) (usecase.ImportValidationResult, *orderapi.UploadReceipt, error)
}

// WalletFacade provides wallet history operations.
type WalletFacade interface {
	Transactions(ctx context.Context, filter model.TransactionFilter) (*model.TransactionPage, error)
	TransactionByID(ctx context.Context, billID int64) (*model.WalletTransaction, error)
}

// PreferenceFacade provides per-customer dashboard preference operations.
type PreferenceFacade interface {
	Preferences(ctx context.Context, customerID int64) (*model.Preferences, error)
	SavePreferences(ctx context.Context, prefs *model.Preferences) (*model.Preferences, error)
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	SessionFacade
	OrderFacade
	WalletFacade
	PreferenceFacade
}

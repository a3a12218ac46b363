package repository

import (
	"context"

	"github.com/sellerdesk/sellerdesk/internal/domain/model"
)

// PreferenceRepository persists per-customer dashboard preferences.
type PreferenceRepository interface {
	// Get returns stored preferences or domain ErrNotFound when the
	// customer has none yet.
	Get(ctx context.Context, customerID int64) (*model.Preferences, error)
	// Save upserts preferences for the customer.
	Save(ctx context.Context, prefs *model.Preferences) (*model.Preferences, error)
}

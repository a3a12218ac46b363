package model

import "time"

// Preferences is per-customer dashboard state persisted server-side. The
// onboarding flag is written once by the onboarding flow and read as an
// opaque gate; the rest seeds the orders view.
type Preferences struct {
	CustomerID          int64     `json:"customer_id"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	DefaultPageSize     int       `json:"default_page_size"`
	RecentOnly          bool      `json:"recent_only"`
	UpdatedAt           time.Time `json:"updated_at"`
}

package dto

import "time"

// PreferencesRequest updates the customer's dashboard preferences.
type PreferencesRequest struct {
	OnboardingCompleted bool `json:"onboarding_completed"`
	DefaultPageSize     int  `json:"default_page_size"`
	RecentOnly          bool `json:"recent_only"`
}

// PreferencesResponse is the customer's stored dashboard preferences.
type PreferencesResponse struct {
	CustomerID          int64     `json:"customer_id"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	DefaultPageSize     int       `json:"default_page_size"`
	RecentOnly          bool      `json:"recent_only"`
	UpdatedAt           time.Time `json:"updated_at"`
}

package test

import (
	"context"
	"time"

	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepositoryStub)(nil)

// PreferenceRepositoryStub stores dashboard preferences in-memory for tests.
type PreferenceRepositoryStub struct {
	Prefs map[int64]*model.Preferences
	Err   error
}

// NewPreferenceRepositoryStub constructs stub repository with an initialized map.
func NewPreferenceRepositoryStub() *PreferenceRepositoryStub {
	return &PreferenceRepositoryStub{Prefs: make(map[int64]*model.Preferences)}
}

// Get fetches preferences by customer or returns not found.
func (s *PreferenceRepositoryStub) Get(ctx context.Context, customerID int64) (*model.Preferences, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if prefs, ok := s.Prefs[customerID]; ok {
		return prefs, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save upserts preferences and stamps the update time.
func (s *PreferenceRepositoryStub) Save(ctx context.Context, prefs *model.Preferences) (*model.Preferences, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Prefs == nil {
		s.Prefs = make(map[int64]*model.Preferences)
	}
	copied := *prefs
	copied.UpdatedAt = time.Now()
	s.Prefs[prefs.CustomerID] = &copied
	return &copied, nil
}

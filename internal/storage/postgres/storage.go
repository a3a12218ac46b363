package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/domain/repository"
)

// pgxPool is the pool surface the storage depends on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type preferenceRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Preferences returns the dashboard preference repository.
func (s *Storage) Preferences() repository.PreferenceRepository {
	return &preferenceRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dashboard_preferences (
            customer_id BIGINT PRIMARY KEY,
            onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
            default_page_size INT NOT NULL DEFAULT 20,
            recent_only BOOLEAN NOT NULL DEFAULT FALSE,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_preferences_updated ON dashboard_preferences(updated_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- PreferenceRepository implementation ---

var _ repository.PreferenceRepository = (*preferenceRepository)(nil)

func (r *preferenceRepository) Get(ctx context.Context, customerID int64) (*model.Preferences, error) {
	const query = `SELECT customer_id, onboarding_completed, default_page_size, recent_only, updated_at
                   FROM dashboard_preferences WHERE customer_id=$1`
	var p model.Preferences
	err := r.storage.pool.QueryRow(ctx, query, customerID).Scan(
		&p.CustomerID, &p.OnboardingCompleted, &p.DefaultPageSize, &p.RecentOnly, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *preferenceRepository) Save(ctx context.Context, prefs *model.Preferences) (*model.Preferences, error) {
	const query = `INSERT INTO dashboard_preferences (customer_id, onboarding_completed, default_page_size, recent_only, updated_at)
                   VALUES ($1, $2, $3, $4, NOW())
                   ON CONFLICT (customer_id) DO UPDATE
                   SET onboarding_completed = EXCLUDED.onboarding_completed,
                       default_page_size = EXCLUDED.default_page_size,
                       recent_only = EXCLUDED.recent_only,
                       updated_at = NOW()
                   RETURNING updated_at`
	saved := *prefs
	err := r.storage.pool.QueryRow(ctx, query,
		prefs.CustomerID, prefs.OnboardingCompleted, prefs.DefaultPageSize, prefs.RecentOnly,
	).Scan(&saved.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

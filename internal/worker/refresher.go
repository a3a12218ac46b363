package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RefreshFacade exposes the subset of application functionality required by
// the refresher.
type RefreshFacade interface {
	ActiveCustomers() []int64
	RefreshOrders(ctx context.Context, customerID int64) error
}

// ViewRefresher periodically re-issues the last order query of every active
// customer so dashboard views stay current between user actions. A refresh
// that loses the race against a newer user request is discarded downstream.
type ViewRefresher struct {
	facade   RefreshFacade
	interval time.Duration
	workers  int
	logger   *slog.Logger

	jobs   chan int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewViewRefresher constructs the refresh worker pool.
func NewViewRefresher(facade RefreshFacade, interval time.Duration, workers int, logger *slog.Logger) *ViewRefresher {
	if workers <= 0 {
		workers = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &ViewRefresher{
		facade:   facade,
		interval: interval,
		workers:  workers,
		logger:   logger,
		jobs:     make(chan int64, workers*4),
	}
}

// Start launches background refreshing.
func (r *ViewRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *ViewRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *ViewRefresher) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.enqueueActive(ctx)
		}
	}
}

func (r *ViewRefresher) enqueueActive(ctx context.Context) {
	for _, customerID := range r.facade.ActiveCustomers() {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- customerID:
		}
	}
}

func (r *ViewRefresher) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case customerID, ok := <-r.jobs:
			if !ok {
				return
			}
			if err := r.facade.RefreshOrders(ctx, customerID); err != nil {
				r.logger.Warn("view refresh failed",
					slog.Int64("customer_id", customerID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

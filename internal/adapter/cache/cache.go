package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerdesk/sellerdesk/internal/domain/model"
)

const (
	maxRetries      = 3
	minRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff = 300 * time.Millisecond
	dialTimeout     = 5 * time.Second
	readTimeout     = 3 * time.Second
	writeTimeout    = 3 * time.Second
)

const orderKeyPrefix = "order:detail:"

// RedisCmdable is the subset of the redis client the cache uses.
type RedisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// OrderCache keeps recently fetched order details so repeated detail views
// skip the round trip to the order service. A nil client disables caching;
// every lookup misses and every store is a no-op.
type OrderCache struct {
	client RedisCmdable
	ttl    time.Duration
	logger *slog.Logger
}

// New builds a cache over an existing redis client. Pass nil to disable.
func New(client RedisCmdable, ttl time.Duration, logger *slog.Logger) *OrderCache {
	return &OrderCache{client: client, ttl: ttl, logger: logger}
}

// Connect dials the Redis server and verifies the connection.
func Connect(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              db,
		MaxRetries:      maxRetries,
		MinRetryBackoff: minRetryBackoff,
		MaxRetryBackoff: maxRetryBackoff,
		DialTimeout:     dialTimeout,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// Enabled reports whether the cache is backed by a live client.
func (c *OrderCache) Enabled() bool {
	return c.client != nil
}

// GetOrder returns the cached order and true on a hit. Cache failures are
// logged and reported as misses so the caller falls through to the source.
func (c *OrderCache) GetOrder(ctx context.Context, orderID string) (*model.Order, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, orderKeyPrefix+orderID).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("order cache read failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		}
		return nil, false
	}

	var order model.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		c.logger.Warn("order cache entry corrupt", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return nil, false
	}
	return &order, true
}

// SetOrder stores an order detail under the configured TTL.
func (c *OrderCache) SetOrder(ctx context.Context, orderID string, order *model.Order) {
	if c.client == nil || order == nil {
		return
	}

	raw, err := json.Marshal(order)
	if err != nil {
		c.logger.Warn("order cache encode failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return
	}

	if err := c.client.Set(ctx, orderKeyPrefix+orderID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("order cache write failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
	}
}

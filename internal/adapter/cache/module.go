package cache

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sellerdesk/sellerdesk/internal/config"
)

// Module exposes the order detail cache to the fx graph. Without a Redis
// address the cache is constructed disabled.
var Module = fx.Provide(newOrderCache)

type cacheParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newOrderCache(p cacheParams) (*OrderCache, error) {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("order detail cache disabled")
		return New(nil, 0, p.Logger), nil
	}

	client, err := Connect(p.Config.RedisAddr, p.Config.RedisPassword, p.Config.RedisDB)
	if err != nil {
		return nil, err
	}
	return New(client, p.Config.DetailCacheTTL, p.Logger), nil
}

package auth

import (
	"go.uber.org/fx"

	"github.com/sellerdesk/sellerdesk/internal/config"
)

// Module provides session token verification via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{})
}

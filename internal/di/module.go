package di

import (
	"go.uber.org/fx"

	"github.com/sellerdesk/sellerdesk/internal/adapter/billapi"
	"github.com/sellerdesk/sellerdesk/internal/adapter/cache"
	"github.com/sellerdesk/sellerdesk/internal/adapter/orderapi"
	"github.com/sellerdesk/sellerdesk/internal/app"
	"github.com/sellerdesk/sellerdesk/internal/config"
	"github.com/sellerdesk/sellerdesk/internal/dispatch"
	"github.com/sellerdesk/sellerdesk/internal/logger"
	"github.com/sellerdesk/sellerdesk/internal/pkg/auth"
	"github.com/sellerdesk/sellerdesk/internal/server/http/handlers"
	"github.com/sellerdesk/sellerdesk/internal/server/http/router"
	"github.com/sellerdesk/sellerdesk/internal/storage/postgres"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		orderapi.Module,
		billapi.Module,
		cache.Module,
		usecase.Module,
		fx.Provide(func(client orderapi.Client) dispatch.Retriever { return client }),
		dispatch.Module,
		fx.Provide(func(f *app.DashboardFacade) handlers.DashboardFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/sellerdesk/sellerdesk/internal/adapter/billapi"
	"github.com/sellerdesk/sellerdesk/internal/adapter/cache"
	"github.com/sellerdesk/sellerdesk/internal/adapter/orderapi"
	"github.com/sellerdesk/sellerdesk/internal/config"
	"github.com/sellerdesk/sellerdesk/internal/dispatch"
	"github.com/sellerdesk/sellerdesk/internal/domain/repository"
	"github.com/sellerdesk/sellerdesk/internal/pkg/auth"
	"github.com/sellerdesk/sellerdesk/internal/usecase"
	"github.com/sellerdesk/sellerdesk/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newDashboardFacade,
		newHTTPServer,
		newViewRefresher,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Strategy    auth.Strategy
	Dispatcher  *dispatch.Dispatcher
	Orders      orderapi.Client
	Bills       billapi.Client
	Cache       *cache.OrderCache
	Preferences repository.PreferenceRepository
	Validator   *usecase.CSVImportValidator
	Config      *config.Config
}

func newDashboardFacade(p facadeParams) *DashboardFacade {
	return NewDashboardFacade(
		p.Strategy,
		p.Dispatcher,
		p.Orders,
		p.Bills,
		p.Cache,
		p.Preferences,
		p.Validator,
		p.Config.DefaultPageSize,
	)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *DashboardFacade
	Config *config.Config
	Logger *slog.Logger
}

func newViewRefresher(p workerParams) *worker.ViewRefresher {
	return worker.NewViewRefresher(
		p.Facade,
		p.Config.RefreshInterval,
		2,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.ViewRefresher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting sellerdesk", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("sellerdesk stopped")
			return nil
		},
	})
}

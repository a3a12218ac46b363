package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/sellerdesk/internal/server/http/handlers"
	"github.com/sellerdesk/sellerdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	ordersHandler := handlers.NewOrdersHandler(facade)
	importHandler := handlers.NewImportHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	preferencesHandler := handlers.NewPreferencesHandler(facade)

	api := engine.Group("/api")
	api.Use(middleware.AuthRequired(facade))

	api.GET("/orders", ordersHandler.List)
	api.GET("/orders/confirmed", ordersHandler.Confirmed)
	api.GET("/orders/:id", ordersHandler.Detail)
	api.POST("/orders/import", importHandler.Upload)

	api.GET("/wallet/bills", walletHandler.List)
	api.GET("/wallet/bills/:id", walletHandler.Detail)

	api.GET("/preferences", preferencesHandler.Get)
	api.PUT("/preferences", preferencesHandler.Put)

	return engine
}

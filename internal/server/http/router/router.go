package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/lusunpay/internal/server/http/handlers"
	"github.com/polkiloo/lusunpay/internal/server/http/middleware"
)

// maxRequestBody caps inflated request payloads.
const maxRequestBody = 1 << 20

// MetricsExporter serves collected metrics.
type MetricsExporter interface {
	Handler() http.Handler
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PaymentFacade, metrics MetricsExporter, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	orderHandler := handlers.NewOrderHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade, facade, facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Health)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := engine.Group("/api")
	api.GET("/orders", orderHandler.List)
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders/:id", orderHandler.Get)
	api.POST("/orders/:id/invoice", invoiceHandler.Submit)
	api.GET("/orders/:id/invoice/document", invoiceHandler.Document)

	api.GET("/balance", balanceHandler.Summary)
	api.GET("/withdrawal/quote", balanceHandler.Quote)
	api.POST("/withdrawal", balanceHandler.Withdraw)
	api.GET("/billing", balanceHandler.Billing)
	api.GET("/receiving-account", balanceHandler.ReceivingAccount)

	admin := api.Group("/admin")
	admin.GET("/orders", adminHandler.Orders)
	admin.POST("/orders/:id/confirm-payment", adminHandler.ConfirmPayment)
	admin.POST("/orders/:id/send-invoice", adminHandler.SendInvoice)

	api.POST("/debug/reset", adminHandler.Reset)

	return engine
}

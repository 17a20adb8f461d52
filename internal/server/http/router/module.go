package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/app"
	"github.com/polkiloo/lusunpay/internal/metrics"
	"github.com/polkiloo/lusunpay/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(f *app.Facade) handlers.PaymentFacade { return f },
	func(m *metrics.Lifecycle) MetricsExporter { return m },
	Setup,
)

package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/app"
	"github.com/polkiloo/lusunpay/internal/clock"
	"github.com/polkiloo/lusunpay/internal/config"
	"github.com/polkiloo/lusunpay/internal/invoice"
	"github.com/polkiloo/lusunpay/internal/logger"
	"github.com/polkiloo/lusunpay/internal/metrics"
	"github.com/polkiloo/lusunpay/internal/policy"
	"github.com/polkiloo/lusunpay/internal/server/http/router"
	"github.com/polkiloo/lusunpay/internal/storage"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		clock.Module,
		storage.Module,
		policy.Module,
		metrics.Module,
		invoice.Module,
		usecase.Module,
		fx.Provide(
			func(g *policy.IDGenerator) usecase.IDIssuer { return g },
			func(m *metrics.Lifecycle) usecase.TransitionRecorder { return m },
			func(r *invoice.Renderer) usecase.InvoiceRenderer { return r },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

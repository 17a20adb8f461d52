// Package storage selects and wires the order store configured by STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/clock"
	"github.com/polkiloo/lusunpay/internal/config"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/seed"
	"github.com/polkiloo/lusunpay/internal/storage/blob"
	"github.com/polkiloo/lusunpay/internal/storage/kv"
	"github.com/polkiloo/lusunpay/internal/storage/postgres"
)

// Module wires the order repository and its shutdown hook.
var Module = fx.Options(
	fx.Provide(newRepository),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock
}

type storageResult struct {
	fx.Out

	Orders repository.OrderRepository
	Closer closeFunc
}

type closeFunc func()

var openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger, seedFn postgres.SeedFunc, clk clock.Clock) (*postgres.Storage, error) {
	return postgres.New(ctx, dsn, logger, seedFn, clk)
}

func newRepository(p storageParams) (storageResult, error) {
	var seedFn func(now time.Time) []model.Order
	if p.Config.SeedOnEmpty {
		seedFn = seed.Orders
	}

	logger := p.Logger.With(slog.String("storage", p.Config.StorageDriver))

	if p.Config.StorageDriver == config.StoragePostgres {
		st, err := openPostgres(p.Ctx, p.Config.DatabaseURI, logger, seedFn, p.Clock)
		if err != nil {
			return storageResult{}, err
		}
		return storageResult{Orders: st, Closer: st.Close}, nil
	}

	backend, err := newBackend(p.Config)
	if err != nil {
		return storageResult{}, err
	}
	store := blob.New(backend, p.Config.StorageKey, seedFn, p.Clock, logger)
	closer := func() {
		if err := store.Close(); err != nil {
			logger.Error("close order store", slog.String("error", err.Error()))
		}
	}
	return storageResult{Orders: store, Closer: closer}, nil
}

func newBackend(cfg *config.Config) (kv.Backend, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return kv.NewMemory(), nil
	case config.StorageFile:
		return kv.NewFile(cfg.StorageDir)
	case config.StorageRedis:
		return kv.NewRedis(cfg.RedisAddress), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func registerLifecycle(lc fx.Lifecycle, closer closeFunc) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			closer()
			return nil
		},
	})
}

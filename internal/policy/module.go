package policy

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/clock"
	"github.com/polkiloo/lusunpay/internal/config"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
)

// Module provides identifier and fee policies.
var Module = fx.Provide(
	newIDGenerator,
	newFeePolicy,
)

type generatorParams struct {
	fx.In

	Config *config.Config
	Clock  clock.Clock
	Orders repository.OrderRepository
}

func newIDGenerator(p generatorParams) (*IDGenerator, error) {
	exists := func(ctx context.Context, id string) (bool, error) {
		_, ok, err := p.Orders.GetByID(ctx, id)
		return ok, err
	}
	return NewIDGenerator(p.Config.OrderIDPrefix, Strategy(p.Config.OrderIDStrategy), p.Clock, exists)
}

func newFeePolicy(cfg *config.Config) (FeePolicy, error) {
	return NewFeePolicy(cfg.WithdrawalFeeRate)
}

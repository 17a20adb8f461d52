package usecase

import (
	"context"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/policy"
	"github.com/polkiloo/lusunpay/internal/query"
)

// BalanceUseCase derives balance figures from the order collection.
type BalanceUseCase struct {
	orders repository.OrderRepository
	fees   policy.FeePolicy
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(orders repository.OrderRepository, fees policy.FeePolicy) *BalanceUseCase {
	return &BalanceUseCase{orders: orders, fees: fees}
}

// Summary returns available, pending and settled totals.
func (u *BalanceUseCase) Summary(ctx context.Context) (model.BalanceSummary, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return model.BalanceSummary{}, err
	}
	return query.Summary(orders), nil
}

// Quote previews what a withdrawal would pay out right now.
func (u *BalanceUseCase) Quote(ctx context.Context) (model.WithdrawalQuote, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return model.WithdrawalQuote{}, err
	}
	return query.Quote(orders, u.fees), nil
}

// Billing returns paid and finished orders together with their total.
func (u *BalanceUseCase) Billing(ctx context.Context) (model.BillingStatement, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return model.BillingStatement{}, err
	}
	settled := query.Settled(orders)
	return model.BillingStatement{Orders: settled, Total: query.SettledTotal(settled)}, nil
}

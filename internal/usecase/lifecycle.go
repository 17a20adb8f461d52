package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/clock"
	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/lifecycle"
	"github.com/polkiloo/lusunpay/internal/policy"
	"github.com/polkiloo/lusunpay/internal/query"
)

// Operation names reported to the TransitionRecorder.
const (
	OperationMarkPaid      = "mark_paid"
	OperationSubmitInvoice = "submit_invoice"
	OperationSendInvoice   = "send_invoice"
	OperationWithdraw      = "withdraw"
)

// maxAttempts bounds read-modify-write retries after a version conflict.
const maxAttempts = 3

// TransitionRecorder observes lifecycle outcomes.
type TransitionRecorder interface {
	Transition(operation string, outcome lifecycle.Outcome)
	Withdrawal(gross, fee decimal.Decimal)
}

// TransitionResult is the order after an operation and what happened to it.
type TransitionResult struct {
	Order   model.Order
	Outcome lifecycle.Outcome
}

// LifecycleUseCase applies lifecycle rules and persists them with a version check.
type LifecycleUseCase struct {
	orders   repository.OrderRepository
	clock    clock.Clock
	fees     policy.FeePolicy
	recorder TransitionRecorder
	logger   *slog.Logger
}

// NewLifecycleUseCase constructs LifecycleUseCase.
func NewLifecycleUseCase(orders repository.OrderRepository, clk clock.Clock, fees policy.FeePolicy, recorder TransitionRecorder, logger *slog.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{orders: orders, clock: clk, fees: fees, recorder: recorder, logger: logger}
}

// MarkPaid records that the buyer paid the order.
func (u *LifecycleUseCase) MarkPaid(ctx context.Context, id string) (TransitionResult, error) {
	return u.transition(ctx, OperationMarkPaid, id, lifecycle.MarkPaid)
}

// SubmitInvoice attaches buyer invoice details. A sent invoice cannot be replaced.
func (u *LifecycleUseCase) SubmitInvoice(ctx context.Context, id string, info model.InvoiceInfo) (TransitionResult, error) {
	normalized, err := lifecycle.NormalizeInvoice(info)
	if err != nil {
		return TransitionResult{}, err
	}
	normalized.SubmittedAt = u.clock.Now()

	res, err := u.transition(ctx, OperationSubmitInvoice, id, func(o model.Order) (model.Order, lifecycle.Outcome) {
		return lifecycle.SubmitInvoice(o, normalized)
	})
	if err != nil {
		return TransitionResult{}, err
	}
	if res.Outcome == lifecycle.NotApplicable {
		return res, domainErrors.ErrInvoiceAlreadySent
	}
	return res, nil
}

// SendInvoice marks the pending invoice as issued.
func (u *LifecycleUseCase) SendInvoice(ctx context.Context, id string) (TransitionResult, error) {
	now := u.clock.Now()
	return u.transition(ctx, OperationSendInvoice, id, func(o model.Order) (model.Order, lifecycle.Outcome) {
		return lifecycle.SendInvoice(o, now)
	})
}

func (u *LifecycleUseCase) transition(
	ctx context.Context,
	operation, id string,
	apply func(model.Order) (model.Order, lifecycle.Outcome),
) (TransitionResult, error) {
	for attempt := 1; ; attempt++ {
		current, ok, err := u.orders.GetByID(ctx, id)
		if err != nil {
			return TransitionResult{}, err
		}
		if !ok {
			return TransitionResult{}, domainErrors.ErrNotFound
		}

		next, outcome := apply(current)
		if outcome != lifecycle.Transitioned {
			u.recorder.Transition(operation, outcome)
			return TransitionResult{Order: current, Outcome: outcome}, nil
		}

		updated, err := u.orders.Update(ctx, next)
		if errors.Is(err, domainErrors.ErrVersionConflict) && attempt < maxAttempts {
			u.logger.Debug("retrying after version conflict",
				slog.String("operation", operation),
				slog.String("order_id", id),
				slog.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return TransitionResult{}, fmt.Errorf("%s %s: %w", operation, id, err)
		}
		if !updated {
			return TransitionResult{}, domainErrors.ErrNotFound
		}

		next.Version = current.Version + 1
		u.recorder.Transition(operation, outcome)
		u.logger.Info("order transitioned",
			slog.String("operation", operation),
			slog.String("order_id", id),
			slog.String("status", string(next.Status)),
		)
		return TransitionResult{Order: next, Outcome: outcome}, nil
	}
}

// Withdraw sweeps every PAID order to FINISHED and returns the receipt.
func (u *LifecycleUseCase) Withdraw(ctx context.Context, payee model.Payee) (model.Withdrawal, error) {
	payee, err := ValidatePayee(payee)
	if err != nil {
		return model.Withdrawal{}, err
	}

	for attempt := 1; ; attempt++ {
		orders, err := u.orders.List(ctx)
		if err != nil {
			return model.Withdrawal{}, err
		}

		swept := lifecycle.Withdraw(orders)
		if len(swept) == 0 {
			u.recorder.Transition(OperationWithdraw, lifecycle.NotApplicable)
			return model.Withdrawal{}, domainErrors.ErrInsufficientBalance
		}

		err = u.orders.UpdateBatch(ctx, swept)
		if errors.Is(err, domainErrors.ErrVersionConflict) && attempt < maxAttempts {
			u.logger.Debug("retrying withdrawal after version conflict", slog.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return model.Withdrawal{}, fmt.Errorf("withdraw: %w", err)
		}

		gross := query.WithdrawableAmount(orders)
		receipt := model.Withdrawal{
			Payee:       model.Payee{Name: payee.Name, IDNumber: MaskIDNumber(payee.IDNumber)},
			Gross:       gross,
			Fee:         u.fees.Fee(gross),
			Net:         u.fees.Net(gross),
			Rate:        u.fees.Rate(),
			OrderIDs:    make([]string, 0, len(swept)),
			ProcessedAt: u.clock.Now(),
		}
		for _, o := range swept {
			receipt.OrderIDs = append(receipt.OrderIDs, o.ID)
		}

		u.recorder.Transition(OperationWithdraw, lifecycle.Transitioned)
		u.recorder.Withdrawal(receipt.Gross, receipt.Fee)
		u.logger.Info("balance withdrawn",
			slog.String("payee", payee.Name),
			slog.String("gross", receipt.Gross.String()),
			slog.String("net", receipt.Net.String()),
			slog.Int("orders", len(swept)),
		)
		return receipt, nil
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/polkiloo/lusunpay/internal/clock"
	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/query"
)

// IDIssuer hands out fresh order identifiers.
type IDIssuer interface {
	Next(ctx context.Context) (string, error)
}

const maxCreateAttempts = 3

// OrderUseCase creates and looks up orders.
type OrderUseCase struct {
	orders repository.OrderRepository
	ids    IDIssuer
	clock  clock.Clock
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, ids IDIssuer, clk clock.Clock, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, ids: ids, clock: clk, logger: logger}
}

// Create validates the request and stores a new PENDING order.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	in, err := ValidateOrderInput(in)
	if err != nil {
		return model.Order{}, err
	}

	for attempt := 1; ; attempt++ {
		id, err := u.ids.Next(ctx)
		if err != nil {
			return model.Order{}, err
		}

		order := model.Order{
			ID:          id,
			ProjectName: in.ProjectName,
			Details:     in.Details,
			Amount:      in.Amount,
			Status:      model.OrderStatusPending,
			CreatedAt:   u.clock.Now(),
			Version:     1,
		}

		err = u.orders.Create(ctx, order)
		if errors.Is(err, domainErrors.ErrAlreadyExists) && attempt < maxCreateAttempts {
			continue
		}
		if err != nil {
			return model.Order{}, fmt.Errorf("create order: %w", err)
		}

		u.logger.Info("order created",
			slog.String("order_id", order.ID),
			slog.String("amount", order.Amount.String()),
		)
		return order, nil
	}
}

// Get returns the order or ErrNotFound.
func (u *OrderUseCase) Get(ctx context.Context, id string) (model.Order, error) {
	order, ok, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		return model.Order{}, domainErrors.ErrNotFound
	}
	return order, nil
}

// List returns every order, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Search returns orders matching term; prioritized puts actionable orders first.
func (u *OrderUseCase) Search(ctx context.Context, term string, prioritized bool) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	orders = query.Search(orders, term)
	if prioritized {
		orders = query.PrioritySort(orders)
	}
	return orders, nil
}

// Reset wipes all orders. The next read re-seeds when seeding is enabled.
func (u *OrderUseCase) Reset(ctx context.Context) error {
	if err := u.orders.Reset(ctx); err != nil {
		return err
	}
	u.logger.Warn("all orders were reset")
	return nil
}

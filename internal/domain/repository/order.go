package repository

import (
	"context"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Writes use optimistic concurrency: the caller passes the order with the
// Version it read, and the store persists it with Version+1 only when the
// stored version still matches.
type OrderRepository interface {
	// List returns all orders, newest created first. An empty store is seeded
	// with the illustrative orders when seeding is enabled.
	List(ctx context.Context) ([]model.Order, error)
	// GetByID looks up an order. A missing order yields ok=false and no error.
	GetByID(ctx context.Context, id string) (order model.Order, ok bool, err error)
	// Create inserts the order at the head of the collection.
	Create(ctx context.Context, order model.Order) error
	// Update replaces the order with the same id. It reports false without an
	// error when no such order exists.
	Update(ctx context.Context, order model.Order) (bool, error)
	// UpdateBatch applies several updates atomically: all or none.
	UpdateBatch(ctx context.Context, orders []model.Order) error
	// Reset removes every order.
	Reset(ctx context.Context) error
}

// HealthChecker is implemented by stores that can probe their backend.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

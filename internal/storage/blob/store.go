// Package blob stores the whole order collection as one JSON document under a
// single key of a key-value backend.
package blob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/polkiloo/lusunpay/internal/clock"
	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/storage/kv"
)

// SeedFunc builds the collection written to an empty store.
type SeedFunc func(now time.Time) []model.Order

// Store implements repository.OrderRepository on top of a kv.Backend.
// Every mutation rewrites the whole document with a compare-and-swap against
// the value it read, so instances sharing one backend key never lose writes.
type Store struct {
	mu      sync.Mutex
	backend kv.Backend
	key     string
	seed    SeedFunc
	clock   clock.Clock
	logger  *slog.Logger
}

var _ repository.OrderRepository = (*Store)(nil)

// New creates a store. A nil seed disables seeding of empty stores.
func New(backend kv.Backend, key string, seed SeedFunc, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		key:     key,
		seed:    seed,
		clock:   clk,
		logger:  logger,
	}
}

// maxSwapAttempts bounds how often a mutation is replayed after another
// writer replaced the document between our read and our write.
const maxSwapAttempts = 5

// load returns the decoded collection and the raw document it came from. The
// raw value is nil when the key is absent and nothing was seeded.
func (s *Store) load(ctx context.Context) ([]model.Order, []byte, error) {
	for attempt := 0; attempt < maxSwapAttempts; attempt++ {
		data, ok, err := s.backend.Get(ctx, s.key)
		if err != nil {
			return nil, nil, fmt.Errorf("load orders: %w", err)
		}

		if ok {
			orders, err := decode(data)
			if err != nil {
				s.logger.Error("order store is corrupted", slog.String("key", s.key), slog.String("error", err.Error()))
				return nil, nil, fmt.Errorf("%w: %s: %v", domainErrors.ErrStorageCorrupted, s.key, err)
			}
			return orders, data, nil
		}

		if s.seed == nil {
			return nil, nil, nil
		}
		orders := s.seed(s.clock.Now())
		seeded, swapped, err := s.swap(ctx, nil, orders)
		if err != nil {
			return nil, nil, err
		}
		if swapped {
			s.logger.Info("seeded empty order store", slog.String("key", s.key), slog.Int("orders", len(orders)))
			return orders, seeded, nil
		}
	}
	return nil, nil, fmt.Errorf("seed orders: %w", domainErrors.ErrVersionConflict)
}

// swap writes orders only while the stored document is still old.
func (s *Store) swap(ctx context.Context, old []byte, orders []model.Order) ([]byte, bool, error) {
	data, err := encode(orders)
	if err != nil {
		return nil, false, fmt.Errorf("encode orders: %w", err)
	}
	swapped, err := s.backend.CompareAndSwap(ctx, s.key, old, data)
	if err != nil {
		return nil, false, fmt.Errorf("save orders: %w", err)
	}
	return data, swapped, nil
}

// mutate applies fn to the current collection and stores the result. When
// another writer replaced the document first, fn runs again on the fresh copy.
func (s *Store) mutate(ctx context.Context, fn func([]model.Order) ([]model.Order, error)) error {
	for attempt := 0; attempt < maxSwapAttempts; attempt++ {
		orders, raw, err := s.load(ctx)
		if err != nil {
			return err
		}
		next, err := fn(orders)
		if err != nil {
			return err
		}
		_, swapped, err := s.swap(ctx, raw, next)
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
		s.logger.Debug("order store changed underneath, retrying", slog.String("key", s.key), slog.Int("attempt", attempt+1))
	}
	return domainErrors.ErrVersionConflict
}

func (s *Store) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, _, err := s.load(ctx)
	return orders, err
}

func (s *Store) GetByID(ctx context.Context, id string) (model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, _, err := s.load(ctx)
	if err != nil {
		return model.Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

func (s *Store) Create(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.Version <= 0 {
		order.Version = 1
	}
	return s.mutate(ctx, func(orders []model.Order) ([]model.Order, error) {
		if slices.ContainsFunc(orders, func(o model.Order) bool { return o.ID == order.ID }) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return append([]model.Order{order.Clone()}, orders...), nil
	})
}

var errUnknownOrder = errors.New("unknown order")

func (s *Store) Update(ctx context.Context, order model.Order) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.mutate(ctx, func(orders []model.Order) ([]model.Order, error) {
		idx := slices.IndexFunc(orders, func(o model.Order) bool { return o.ID == order.ID })
		if idx < 0 {
			return nil, errUnknownOrder
		}
		if orders[idx].Version != order.Version {
			return nil, domainErrors.ErrVersionConflict
		}
		orders[idx] = bump(orders[idx], order)
		return orders, nil
	})
	if errors.Is(err, errUnknownOrder) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) UpdateBatch(ctx context.Context, updates []model.Order) error {
	if len(updates) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func(orders []model.Order) ([]model.Order, error) {
		index := make(map[string]int, len(orders))
		for i, o := range orders {
			index[o.ID] = i
		}
		for _, u := range updates {
			i, ok := index[u.ID]
			if !ok || orders[i].Version != u.Version {
				return nil, domainErrors.ErrVersionConflict
			}
		}
		for _, u := range updates {
			i := index[u.ID]
			orders[i] = bump(orders[i], u)
		}
		return orders, nil
	})
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("reset orders: %w", err)
	}
	s.logger.Warn("order store reset", slog.String("key", s.key))
	return nil
}

// HealthCheck probes the backend when it supports it.
func (s *Store) HealthCheck(ctx context.Context) error {
	if hc, ok := s.backend.(repository.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// bump keeps the immutable fields of stored and takes the mutable ones from next.
func bump(stored, next model.Order) model.Order {
	out := stored
	out.Status = next.Status
	out.Invoice = next.Clone().Invoice
	out.Version = stored.Version + 1
	return out
}

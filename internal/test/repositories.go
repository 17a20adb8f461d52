package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
)

// OrderRepositoryStub keeps orders in memory with the same version checks as
// the real stores. Newest orders are listed first.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	orders []model.Order

	// Err is returned from every call when set.
	Err error
	// Conflicts makes the next N Update/UpdateBatch calls fail with ErrVersionConflict.
	Conflicts int
	// UpdateCalls counts Update and UpdateBatch invocations.
	UpdateCalls int
	Resets      int
}

var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)

// NewOrderRepositoryStub constructs a stub holding orders in the given order.
func NewOrderRepositoryStub(orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{}
	for _, o := range orders {
		s.orders = append(s.orders, o.Clone())
	}
	return s
}

// List returns copies of all orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

// GetByID finds an order by id.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return model.Order{}, false, s.Err
	}
	if i := s.index(id); i >= 0 {
		return s.orders[i].Clone(), true, nil
	}
	return model.Order{}, false, nil
}

// Create prepends order unless the id is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.index(order.ID) >= 0 {
		return domainErrors.ErrAlreadyExists
	}
	s.orders = append([]model.Order{order.Clone()}, s.orders...)
	return nil
}

// Update replaces status and invoice when versions match.
func (s *OrderRepositoryStub) Update(ctx context.Context, order model.Order) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	if s.Err != nil {
		return false, s.Err
	}
	i := s.index(order.ID)
	if i < 0 {
		return false, nil
	}
	if s.Conflicts > 0 {
		s.Conflicts--
		return false, domainErrors.ErrVersionConflict
	}
	if s.orders[i].Version != order.Version {
		return false, domainErrors.ErrVersionConflict
	}
	s.orders[i] = bumped(s.orders[i], order)
	return true, nil
}

// UpdateBatch applies all updates or none.
func (s *OrderRepositoryStub) UpdateBatch(ctx context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	if s.Err != nil {
		return s.Err
	}
	if s.Conflicts > 0 {
		s.Conflicts--
		return domainErrors.ErrVersionConflict
	}
	for _, o := range orders {
		i := s.index(o.ID)
		if i < 0 {
			return domainErrors.ErrNotFound
		}
		if s.orders[i].Version != o.Version {
			return domainErrors.ErrVersionConflict
		}
	}
	for _, o := range orders {
		i := s.index(o.ID)
		s.orders[i] = bumped(s.orders[i], o)
	}
	return nil
}

// Reset drops every order.
func (s *OrderRepositoryStub) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.orders = nil
	s.Resets++
	return nil
}

// Snapshot returns the stored order without touching error hooks.
func (s *OrderRepositoryStub) Snapshot(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.orders[i].Clone(), true
	}
	return model.Order{}, false
}

func (s *OrderRepositoryStub) index(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func bumped(stored, next model.Order) model.Order {
	out := stored.Clone()
	out.Status = next.Status
	if next.Invoice != nil {
		inv := next.Invoice.Clone()
		out.Invoice = &inv
	} else {
		out.Invoice = nil
	}
	out.Version = stored.Version + 1
	return out
}

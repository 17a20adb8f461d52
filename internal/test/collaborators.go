package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/lifecycle"
)

// IDIssuerStub returns ids from a fixed list, then numbered fallbacks.
type IDIssuerStub struct {
	IDs   []string
	Err   error
	calls int
}

// Next returns the next configured identifier.
func (s *IDIssuerStub) Next(ctx context.Context) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.calls++
	if s.calls <= len(s.IDs) {
		return s.IDs[s.calls-1], nil
	}
	return fmt.Sprintf("TS-20240101-%03d", s.calls), nil
}

// TransitionCall is one recorded lifecycle outcome.
type TransitionCall struct {
	Operation string
	Outcome   lifecycle.Outcome
}

// RecorderStub captures transitions and withdrawals.
type RecorderStub struct {
	mu          sync.Mutex
	Transitions []TransitionCall
	Gross       decimal.Decimal
	Fees        decimal.Decimal
	Withdrawals int
}

// Transition stores the outcome.
func (r *RecorderStub) Transition(operation string, outcome lifecycle.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Transitions = append(r.Transitions, TransitionCall{Operation: operation, Outcome: outcome})
}

// Withdrawal accumulates swept amounts.
func (r *RecorderStub) Withdrawal(gross, fee decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Withdrawals++
	r.Gross = r.Gross.Add(gross)
	r.Fees = r.Fees.Add(fee)
}

// RendererStub returns a fixed document.
type RendererStub struct {
	Doc      []byte
	Err      error
	Rendered []string
}

// Render records the order id and returns Doc.
func (r *RendererStub) Render(order model.Order) ([]byte, error) {
	r.Rendered = append(r.Rendered, order.ID)
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Doc == nil {
		return []byte("%PDF-stub"), nil
	}
	return r.Doc, nil
}

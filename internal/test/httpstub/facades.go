// Package httpstub holds facade doubles for the HTTP layer tests.
package httpstub

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/lifecycle"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, usecase.CreateOrderInput) (model.Order, error)
	OrderFn  func(context.Context, string) (model.Order, error)
	OrdersFn func(context.Context, string, bool) ([]model.Order, error)
}

// CreateOrder delegates to provided function or echoes the input as a new order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return model.Order{
		ID:          "LS-20240101-001",
		ProjectName: in.ProjectName,
		Details:     in.Details,
		Amount:      in.Amount,
		Status:      model.OrderStatusPending,
		CreatedAt:   time.Unix(0, 0).UTC(),
		Version:     1,
	}, nil
}

// Order returns a pending order with the requested id.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return model.Order{ID: id, Amount: decimal.NewFromInt(1), Status: model.OrderStatusPending, Version: 1}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context, term string, prioritized bool) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, term, prioritized)
	}
	return []model.Order{{ID: "LS-20240101-001", Status: model.OrderStatusPending, Version: 1}}, nil
}

// CheckoutURL builds a deterministic cashier link.
func (s OrderFacadeStub) CheckoutURL(id string) string {
	return "http://pay.test/cashier/" + id
}

// InvoiceFacadeStub simulates invoice operations.
type InvoiceFacadeStub struct {
	SubmitFn   func(context.Context, string, model.InvoiceInfo) (usecase.TransitionResult, error)
	DocumentFn func(context.Context, string) ([]byte, error)
}

// SubmitInvoice attaches the invoice by default.
func (s InvoiceFacadeStub) SubmitInvoice(ctx context.Context, id string, info model.InvoiceInfo) (usecase.TransitionResult, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, id, info)
	}
	return usecase.TransitionResult{
		Order:   model.Order{ID: id, Status: model.OrderStatusPaid, Invoice: &info, Version: 2},
		Outcome: lifecycle.Transitioned,
	}, nil
}

// InvoiceDocument returns a stub PDF.
func (s InvoiceFacadeStub) InvoiceDocument(ctx context.Context, id string) ([]byte, error) {
	if s.DocumentFn != nil {
		return s.DocumentFn(ctx, id)
	}
	return []byte("%PDF-1.3 stub"), nil
}

// BalanceFacadeStub simulates balance operations.
type BalanceFacadeStub struct {
	BalanceFn  func(context.Context) (model.BalanceSummary, error)
	QuoteFn    func(context.Context) (model.WithdrawalQuote, error)
	WithdrawFn func(context.Context, model.Payee) (model.Withdrawal, error)
	BillingFn  func(context.Context) (model.BillingStatement, error)
	Account    model.ReceivingAccount
}

// Balance returns stored summary or default data.
func (s BalanceFacadeStub) Balance(ctx context.Context) (model.BalanceSummary, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx)
	}
	return model.BalanceSummary{Available: decimal.NewFromInt(10), Pending: decimal.NewFromInt(5), Settled: decimal.NewFromInt(10)}, nil
}

// WithdrawalQuote returns a quote for the default balance.
func (s BalanceFacadeStub) WithdrawalQuote(ctx context.Context) (model.WithdrawalQuote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx)
	}
	return model.WithdrawalQuote{
		Gross:  decimal.NewFromInt(1000),
		Fee:    decimal.NewFromInt(65),
		Net:    decimal.NewFromInt(935),
		Rate:   decimal.RequireFromString("0.065"),
		Orders: 1,
	}, nil
}

// Withdraw executes configured withdrawal handler.
func (s BalanceFacadeStub) Withdraw(ctx context.Context, payee model.Payee) (model.Withdrawal, error) {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, payee)
	}
	return model.Withdrawal{
		Payee:       payee,
		Gross:       decimal.NewFromInt(1000),
		Fee:         decimal.NewFromInt(65),
		Net:         decimal.NewFromInt(935),
		Rate:        decimal.RequireFromString("0.065"),
		OrderIDs:    []string{"LS-20240101-001"},
		ProcessedAt: time.Unix(0, 0).UTC(),
	}, nil
}

// Billing returns preconfigured history.
func (s BalanceFacadeStub) Billing(ctx context.Context) (model.BillingStatement, error) {
	if s.BillingFn != nil {
		return s.BillingFn(ctx)
	}
	return model.BillingStatement{
		Orders: []model.Order{{ID: "LS-20240101-001", Amount: decimal.NewFromInt(10), Status: model.OrderStatusFinished}},
		Total:  decimal.NewFromInt(10),
	}, nil
}

// ReceivingAccount returns the configured account.
func (s BalanceFacadeStub) ReceivingAccount() model.ReceivingAccount {
	return s.Account
}

// AdminFacadeStub simulates operator actions.
type AdminFacadeStub struct {
	ConfirmFn func(context.Context, string) (usecase.TransitionResult, error)
	SendFn    func(context.Context, string) (usecase.TransitionResult, error)
	ResetFn   func(context.Context) error
	HealthFn  func(context.Context) error
}

// ConfirmPayment marks the order paid by default.
func (s AdminFacadeStub) ConfirmPayment(ctx context.Context, id string) (usecase.TransitionResult, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, id)
	}
	return usecase.TransitionResult{Order: model.Order{ID: id, Status: model.OrderStatusPaid, Version: 2}, Outcome: lifecycle.Transitioned}, nil
}

// SendInvoice reports a no-op by default.
func (s AdminFacadeStub) SendInvoice(ctx context.Context, id string) (usecase.TransitionResult, error) {
	if s.SendFn != nil {
		return s.SendFn(ctx, id)
	}
	return usecase.TransitionResult{Order: model.Order{ID: id, Status: model.OrderStatusPaid, Version: 1}, Outcome: lifecycle.NotApplicable}, nil
}

// Reset succeeds by default.
func (s AdminFacadeStub) Reset(ctx context.Context) error {
	if s.ResetFn != nil {
		return s.ResetFn(ctx)
	}
	return nil
}

// Health succeeds by default.
func (s AdminFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// PaymentFacadeStub aggregates facade dependencies for HTTP layer tests.
type PaymentFacadeStub struct {
	OrderFacadeStub
	InvoiceFacadeStub
	BalanceFacadeStub
	AdminFacadeStub
}

// MetricsStub serves a fixed exposition body.
type MetricsStub struct{}

// Handler writes a single fake counter.
func (MetricsStub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		_, _ = w.Write([]byte("lusunpay_stub_total 1\n"))
	})
}

package handlers

import (
	"context"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (model.Order, error)
	Order(ctx context.Context, id string) (model.Order, error)
	Orders(ctx context.Context, term string, prioritized bool) ([]model.Order, error)
	CheckoutURL(id string) string
}

// InvoiceFacade covers the buyer's invoice request and document download.
type InvoiceFacade interface {
	SubmitInvoice(ctx context.Context, id string, info model.InvoiceInfo) (usecase.TransitionResult, error)
	InvoiceDocument(ctx context.Context, id string) ([]byte, error)
}

// BalanceFacade provides balance related operations.
type BalanceFacade interface {
	Balance(ctx context.Context) (model.BalanceSummary, error)
	WithdrawalQuote(ctx context.Context) (model.WithdrawalQuote, error)
	Withdraw(ctx context.Context, payee model.Payee) (model.Withdrawal, error)
	Billing(ctx context.Context) (model.BillingStatement, error)
	ReceivingAccount() model.ReceivingAccount
}

// AdminFacade holds operator actions.
type AdminFacade interface {
	ConfirmPayment(ctx context.Context, id string) (usecase.TransitionResult, error)
	SendInvoice(ctx context.Context, id string) (usecase.TransitionResult, error)
	Reset(ctx context.Context) error
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// PaymentFacade aggregates the full set of operations used across handlers.
type PaymentFacade interface {
	OrderFacade
	InvoiceFacade
	BalanceFacade
	AdminFacade
	HealthFacade
}

package app

import (
	"context"
	"net/url"

	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/config"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

// FacadeParams lists the use cases the HTTP layer reaches through Facade.
type FacadeParams struct {
	fx.In

	Config    *config.Config
	Orders    *usecase.OrderUseCase
	Lifecycle *usecase.LifecycleUseCase
	Balance   *usecase.BalanceUseCase
	Invoices  *usecase.InvoiceUseCase
	Account   model.ReceivingAccount
	Storage   repository.OrderRepository
}

// Facade is the single entry point of the transport layer into the use cases.
type Facade struct {
	origin    string
	orders    *usecase.OrderUseCase
	lifecycle *usecase.LifecycleUseCase
	balance   *usecase.BalanceUseCase
	invoices  *usecase.InvoiceUseCase
	account   model.ReceivingAccount
	storage   repository.OrderRepository
}

func NewFacade(p FacadeParams) *Facade {
	return &Facade{
		origin:    p.Config.PublicOrigin,
		orders:    p.Orders,
		lifecycle: p.Lifecycle,
		balance:   p.Balance,
		invoices:  p.Invoices,
		account:   p.Account,
		storage:   p.Storage,
	}
}

func (f *Facade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *Facade) Order(ctx context.Context, id string) (model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *Facade) Orders(ctx context.Context, term string, prioritized bool) ([]model.Order, error) {
	return f.orders.Search(ctx, term, prioritized)
}

// CheckoutURL is the cashier link shared with the buyer.
func (f *Facade) CheckoutURL(id string) string {
	return f.origin + "/cashier/" + url.PathEscape(id)
}

func (f *Facade) SubmitInvoice(ctx context.Context, id string, info model.InvoiceInfo) (usecase.TransitionResult, error) {
	return f.lifecycle.SubmitInvoice(ctx, id, info)
}

func (f *Facade) InvoiceDocument(ctx context.Context, id string) ([]byte, error) {
	return f.invoices.Document(ctx, id)
}

func (f *Facade) ConfirmPayment(ctx context.Context, id string) (usecase.TransitionResult, error) {
	return f.lifecycle.MarkPaid(ctx, id)
}

func (f *Facade) SendInvoice(ctx context.Context, id string) (usecase.TransitionResult, error) {
	return f.lifecycle.SendInvoice(ctx, id)
}

func (f *Facade) Balance(ctx context.Context) (model.BalanceSummary, error) {
	return f.balance.Summary(ctx)
}

func (f *Facade) WithdrawalQuote(ctx context.Context) (model.WithdrawalQuote, error) {
	return f.balance.Quote(ctx)
}

func (f *Facade) Withdraw(ctx context.Context, payee model.Payee) (model.Withdrawal, error) {
	return f.lifecycle.Withdraw(ctx, payee)
}

func (f *Facade) Billing(ctx context.Context) (model.BillingStatement, error) {
	return f.balance.Billing(ctx)
}

func (f *Facade) ReceivingAccount() model.ReceivingAccount {
	return f.account
}

func (f *Facade) Reset(ctx context.Context) error {
	return f.orders.Reset(ctx)
}

// Health pings the storage backend when it supports health checks.
func (f *Facade) Health(ctx context.Context) error {
	if hc, ok := f.storage.(repository.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

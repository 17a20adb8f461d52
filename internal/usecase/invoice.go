package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
)

// InvoiceRenderer turns an order with invoice details into a document.
type InvoiceRenderer interface {
	Render(order model.Order) ([]byte, error)
}

// InvoiceUseCase serves documents for issued invoices.
type InvoiceUseCase struct {
	orders   repository.OrderRepository
	renderer InvoiceRenderer
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(orders repository.OrderRepository, renderer InvoiceRenderer) *InvoiceUseCase {
	return &InvoiceUseCase{orders: orders, renderer: renderer}
}

// Document renders the invoice of id. Only sent invoices can be downloaded.
func (u *InvoiceUseCase) Document(ctx context.Context, id string) ([]byte, error) {
	order, ok, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.Invoice == nil || !order.Invoice.Sent() {
		return nil, domainErrors.ErrInvoiceNotSent
	}

	doc, err := u.renderer.Render(order)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", id, err)
	}
	return doc, nil
}

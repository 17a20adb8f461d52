package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes payment lifecycle. Transitions only move forward.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusFinished OrderStatus = "FINISHED"
)

// Valid reports whether status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFinished:
		return true
	}
	return false
}

// Order is a payment request issued by a payee to a payer.
type Order struct {
	ID          string
	ProjectName string
	Details     string
	Amount      decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
	Invoice     *InvoiceInfo
	// Version is bumped by the store on every successful write.
	Version int64
}

// HasPendingInvoice reports whether an invoice was submitted but not sent yet.
func (o Order) HasPendingInvoice() bool {
	return o.Invoice != nil && !o.Invoice.Sent()
}

// Clone returns a deep copy so callers can mutate the invoice safely.
func (o Order) Clone() Order {
	if o.Invoice != nil {
		inv := o.Invoice.Clone()
		o.Invoice = &inv
	}
	return o
}

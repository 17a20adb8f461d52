// Package lifecycle holds the order state machine. Functions here are pure:
// they never touch storage and never mutate their inputs.
package lifecycle

import (
	"time"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// Outcome reports what a transition did.
type Outcome int

const (
	// Transitioned means the order changed and must be persisted.
	Transitioned Outcome = iota + 1
	// AlreadyDone means the order is already in the target state.
	AlreadyDone
	// NotApplicable means the precondition failed and nothing changed.
	NotApplicable
)

func (o Outcome) String() string {
	switch o {
	case Transitioned:
		return "transitioned"
	case AlreadyDone:
		return "already_done"
	case NotApplicable:
		return "not_applicable"
	}
	return "unknown"
}

// MarkPaid moves a PENDING order to PAID.
func MarkPaid(o model.Order) (model.Order, Outcome) {
	switch o.Status {
	case model.OrderStatusPending:
		next := o.Clone()
		next.Status = model.OrderStatusPaid
		return next, Transitioned
	case model.OrderStatusPaid:
		return o, AlreadyDone
	default:
		return o, NotApplicable
	}
}

// Withdraw returns the PAID subset of orders switched to FINISHED.
// Orders in other states are left out of the result.
func Withdraw(orders []model.Order) []model.Order {
	var swept []model.Order
	for _, o := range orders {
		if o.Status != model.OrderStatusPaid {
			continue
		}
		next := o.Clone()
		next.Status = model.OrderStatusFinished
		swept = append(swept, next)
	}
	return swept
}

// SubmitInvoice attaches invoice details to the order. An unsent invoice is
// overwritten; a sent one is final.
func SubmitInvoice(o model.Order, info model.InvoiceInfo) (model.Order, Outcome) {
	if o.Invoice != nil && o.Invoice.Sent() {
		return o, NotApplicable
	}
	next := o.Clone()
	inv := info.Clone()
	inv.SentAt = nil
	next.Invoice = &inv
	return next, Transitioned
}

// SendInvoice stamps the invoice as delivered at now.
func SendInvoice(o model.Order, now time.Time) (model.Order, Outcome) {
	if o.Invoice == nil {
		return o, NotApplicable
	}
	if o.Invoice.Sent() {
		return o, AlreadyDone
	}
	next := o.Clone()
	sentAt := now
	next.Invoice.SentAt = &sentAt
	return next, Transitioned
}

package seed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

func TestOrders(t *testing.T) {
	now := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	orders := Orders(now)
	if len(orders) != 2 {
		t.Fatalf("expected two seed orders, got %d", len(orders))
	}

	paid := orders[0]
	if paid.ID != "LS-20240107-001" || paid.Status != model.OrderStatusPaid || !paid.Amount.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("unexpected first seed: %+v", paid)
	}
	if paid.Invoice == nil || !paid.Invoice.Sent() || paid.Invoice.Type != model.InvoiceTypeGeneral {
		t.Fatalf("expected sent general invoice, got %+v", paid.Invoice)
	}
	if paid.Invoice.TaxID != "91110000123456789X" || paid.Invoice.Email != "finance@bytedance.com" {
		t.Fatalf("unexpected invoice details: %+v", paid.Invoice)
	}

	pending := orders[1]
	if pending.ID != "LS-20240108-002" || pending.Status != model.OrderStatusPending || pending.Invoice != nil {
		t.Fatalf("unexpected second seed: %+v", pending)
	}
	if !pending.CreatedAt.Equal(now) {
		t.Fatalf("expected created at now, got %v", pending.CreatedAt)
	}

	for _, o := range orders {
		if o.Version != 1 {
			t.Fatalf("expected version 1, got %d", o.Version)
		}
	}
}

func TestOrdersReturnsFreshCopies(t *testing.T) {
	now := time.Now()
	first := Orders(now)
	first[0].Invoice.CompanyName = "changed"
	if second := Orders(now); second[0].Invoice.CompanyName == "changed" {
		t.Fatal("seed orders must not share state between calls")
	}
}

package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "PENDING"},
		{"paid", OrderStatusPaid, "PAID"},
		{"finished", OrderStatusFinished, "FINISHED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	if OrderStatus("REFUNDED").Valid() {
		t.Fatal("unexpected valid status")
	}
}

func TestInvoiceTypeValues(t *testing.T) {
	if string(InvoiceTypeGeneral) != "GENERAL" || string(InvoiceTypeSpecial) != "SPECIAL" {
		t.Fatalf("unexpected invoice type values: %s %s", InvoiceTypeGeneral, InvoiceTypeSpecial)
	}
}

func TestOrderCloneDetachesInvoice(t *testing.T) {
	sent := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	order := Order{
		ID:      "LS-20240107-001",
		Amount:  decimal.NewFromInt(12000),
		Status:  OrderStatusPaid,
		Invoice: &InvoiceInfo{Type: InvoiceTypeGeneral, CompanyName: "Acme", SentAt: &sent},
	}

	clone := order.Clone()
	clone.Invoice.CompanyName = "Other"
	*clone.Invoice.SentAt = sent.Add(time.Hour)

	if order.Invoice.CompanyName != "Acme" {
		t.Fatalf("clone mutated original company: %s", order.Invoice.CompanyName)
	}
	if !order.Invoice.SentAt.Equal(sent) {
		t.Fatalf("clone mutated original sentAt: %v", order.Invoice.SentAt)
	}
}

func TestHasPendingInvoice(t *testing.T) {
	sent := time.Now()
	cases := []struct {
		name  string
		order Order
		want  bool
	}{
		{"no invoice", Order{}, false},
		{"unsent", Order{Invoice: &InvoiceInfo{}}, true},
		{"sent", Order{Invoice: &InvoiceInfo{SentAt: &sent}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.HasPendingInvoice(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

func TestRender(t *testing.T) {
	sent := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	renderer := NewRenderer(model.ReceivingAccount{AccountName: "Principles Tech Ltd.", AccountNumber: "6222", BankName: "CMB"})

	for _, typ := range []model.InvoiceType{model.InvoiceTypeGeneral, model.InvoiceTypeSpecial} {
		t.Run(string(typ), func(t *testing.T) {
			order := model.Order{
				ID:          "LS-20240107-001",
				ProjectName: "Website",
				Details:     "Design",
				Amount:      decimal.NewFromInt(12000),
				Status:      model.OrderStatusPaid,
				Invoice: &model.InvoiceInfo{
					Type:        typ,
					CompanyName: "Acme",
					TaxID:       "9111",
					Email:       "a@acme.com",
					Address:     "Road 1",
					Phone:       "010",
					BankName:    "Bank",
					BankAccount: "1",
					SubmittedAt: sent.Add(-time.Hour),
					SentAt:      &sent,
				},
			}

			pdf, err := renderer.Render(order)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.HasPrefix(pdf, []byte("%PDF")) {
				t.Fatalf("expected PDF output, got %q", pdf[:min(len(pdf), 8)])
			}
		})
	}
}

func TestRenderWithoutInvoice(t *testing.T) {
	if _, err := NewRenderer(model.ReceivingAccount{}).Render(model.Order{ID: "x"}); err == nil {
		t.Fatal("expected error")
	}
}

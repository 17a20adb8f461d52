// Package seed provides the illustrative orders shown on a fresh install.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// Orders returns the demo collection relative to now, in display order.
func Orders(now time.Time) []model.Order {
	now = now.UTC()
	submitted := now.Add(-24 * time.Hour)
	sent := now.Add(-12 * time.Hour)

	return []model.Order{
		{
			ID:          "LS-20240107-001",
			ProjectName: "Lusun website redesign, phase two",
			Details:     "Design consulting fee",
			Amount:      decimal.NewFromInt(12000),
			Status:      model.OrderStatusPaid,
			CreatedAt:   now.Add(-24 * time.Hour),
			Invoice: &model.InvoiceInfo{
				Type:        model.InvoiceTypeGeneral,
				CompanyName: "ByteDance Technology Co., Ltd.",
				TaxID:       "91110000123456789X",
				Email:       "finance@bytedance.com",
				SubmittedAt: submitted,
				SentAt:      &sent,
			},
			Version: 1,
		},
		{
			ID:          "LS-20240108-002",
			ProjectName: "Core SaaS back office development",
			Details:     "Software development fee",
			Amount:      decimal.NewFromInt(25000),
			Status:      model.OrderStatusPending,
			CreatedAt:   now,
			Version:     1,
		},
	}
}

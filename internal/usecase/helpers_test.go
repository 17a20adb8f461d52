package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/clock"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/policy"
)

var testNow = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func fakeClock() *clock.FakeClock {
	return clock.NewFakeClock(testNow)
}

func defaultFees() policy.FeePolicy {
	fees, err := policy.NewFeePolicy(policy.DefaultFeeRate)
	if err != nil {
		panic(err)
	}
	return fees
}

func order(id string, status model.OrderStatus, amount string) model.Order {
	return model.Order{
		ID:          id,
		ProjectName: "Project " + id,
		Details:     "details",
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
		CreatedAt:   testNow.Add(-time.Hour),
		Version:     1,
	}
}

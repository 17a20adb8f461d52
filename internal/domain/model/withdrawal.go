package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payee identifies the real-name account holder receiving a withdrawal.
type Payee struct {
	Name     string
	IDNumber string
}

// WithdrawalQuote previews the outcome of withdrawing the available balance.
type WithdrawalQuote struct {
	Gross  decimal.Decimal
	Fee    decimal.Decimal
	Net    decimal.Decimal
	Rate   decimal.Decimal
	Orders int
}

// Withdrawal is the receipt of a completed balance sweep.
type Withdrawal struct {
	Payee       Payee
	Gross       decimal.Decimal
	Fee         decimal.Decimal
	Net         decimal.Decimal
	Rate        decimal.Decimal
	OrderIDs    []string
	ProcessedAt time.Time
}

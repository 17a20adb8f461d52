package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawRequest carries the real-name confirmation of the payee.
type WithdrawRequest struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
}

// QuoteResponse previews a withdrawal.
type QuoteResponse struct {
	Gross  decimal.Decimal `json:"gross"`
	Fee    decimal.Decimal `json:"fee"`
	Net    decimal.Decimal `json:"net"`
	Rate   decimal.Decimal `json:"rate"`
	Orders int             `json:"orders"`
}

// WithdrawalResponse is the receipt of a completed withdrawal.
type WithdrawalResponse struct {
	Name        string          `json:"name"`
	IDNumber    string          `json:"idNumber"`
	Gross       decimal.Decimal `json:"gross"`
	Fee         decimal.Decimal `json:"fee"`
	Net         decimal.Decimal `json:"net"`
	Rate        decimal.Decimal `json:"rate"`
	OrderIDs    []string        `json:"orderIds"`
	ProcessedAt time.Time       `json:"processedAt"`
}

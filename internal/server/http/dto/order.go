package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest describes a new payment request.
type CreateOrderRequest struct {
	ProjectName string          `json:"projectName"`
	Details     string          `json:"details"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID          string           `json:"id"`
	ProjectName string           `json:"projectName"`
	Details     string           `json:"details"`
	Amount      decimal.Decimal  `json:"amount"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	Invoice     *InvoiceResponse `json:"invoiceInfo,omitempty"`
	CheckoutURL string           `json:"checkoutUrl,omitempty"`
	Version     int64            `json:"version"`
}

// ErrorResponse carries a stable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

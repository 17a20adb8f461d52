package dto

import "github.com/shopspring/decimal"

// BalanceResponse summarizes order amounts by stage.
type BalanceResponse struct {
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	Settled   decimal.Decimal `json:"settled"`
}

// BillingResponse lists settled orders.
type BillingResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

// ReceivingAccountResponse is the custodial account buyers transfer to.
type ReceivingAccountResponse struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}

// AdminOrdersResponse is the operator view of all orders.
type AdminOrdersResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Pending decimal.Decimal `json:"pending"`
	Settled decimal.Decimal `json:"settled"`
}

package model

import "github.com/shopspring/decimal"

// BalanceSummary aggregates order amounts by lifecycle stage.
type BalanceSummary struct {
	// Available is the sum of PAID orders that can be withdrawn.
	Available decimal.Decimal
	// Pending is the sum of orders still awaiting payment.
	Pending decimal.Decimal
	// Settled is the sum of PAID and FINISHED orders.
	Settled decimal.Decimal
}

// BillingStatement lists settled orders with their combined amount.
type BillingStatement struct {
	Orders []Order
	Total  decimal.Decimal
}

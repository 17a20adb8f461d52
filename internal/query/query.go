// Package query derives balances and views from a snapshot of orders.
package query

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/policy"
)

func sumByStatus(orders []model.Order, statuses ...model.OrderStatus) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if slices.Contains(statuses, o.Status) {
			total = total.Add(o.Amount)
		}
	}
	return total
}

// AvailableBalance sums PAID orders.
func AvailableBalance(orders []model.Order) decimal.Decimal {
	return sumByStatus(orders, model.OrderStatusPaid)
}

// PendingTotal sums orders awaiting payment.
func PendingTotal(orders []model.Order) decimal.Decimal {
	return sumByStatus(orders, model.OrderStatusPending)
}

// SettledTotal sums PAID and FINISHED orders.
func SettledTotal(orders []model.Order) decimal.Decimal {
	return sumByStatus(orders, model.OrderStatusPaid, model.OrderStatusFinished)
}

// WithdrawableAmount is the amount a withdrawal would sweep.
func WithdrawableAmount(orders []model.Order) decimal.Decimal {
	return AvailableBalance(orders)
}

// NetAfterFee is the withdrawable amount minus the service fee.
func NetAfterFee(orders []model.Order, fees policy.FeePolicy) decimal.Decimal {
	return fees.Net(WithdrawableAmount(orders))
}

// Summary combines the three balance totals.
func Summary(orders []model.Order) model.BalanceSummary {
	return model.BalanceSummary{
		Available: AvailableBalance(orders),
		Pending:   PendingTotal(orders),
		Settled:   SettledTotal(orders),
	}
}

// Quote previews a withdrawal of the current available balance.
func Quote(orders []model.Order, fees policy.FeePolicy) model.WithdrawalQuote {
	gross := WithdrawableAmount(orders)
	count := 0
	for _, o := range orders {
		if o.Status == model.OrderStatusPaid {
			count++
		}
	}
	return model.WithdrawalQuote{
		Gross:  gross,
		Fee:    fees.Fee(gross),
		Net:    fees.Net(gross),
		Rate:   fees.Rate(),
		Orders: count,
	}
}

// Search keeps orders whose project name or id contains term, ignoring case.
// An empty term keeps everything. The term is matched as typed, spaces included.
func Search(orders []model.Order, term string) []model.Order {
	term = strings.ToLower(term)
	if term == "" {
		return slices.Clone(orders)
	}
	var out []model.Order
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ProjectName), term) || strings.Contains(strings.ToLower(o.ID), term) {
			out = append(out, o)
		}
	}
	return out
}

// Settled keeps PAID and FINISHED orders in their original order.
func Settled(orders []model.Order) []model.Order {
	var out []model.Order
	for _, o := range orders {
		if o.Status == model.OrderStatusPaid || o.Status == model.OrderStatusFinished {
			out = append(out, o)
		}
	}
	return out
}

// PrioritySort puts orders needing action first: PENDING, then PAID with an
// unsent invoice, then the rest. The sort is stable.
func PrioritySort(orders []model.Order) []model.Order {
	out := slices.Clone(orders)
	slices.SortStableFunc(out, func(a, b model.Order) int {
		return priority(a) - priority(b)
	})
	return out
}

func priority(o model.Order) int {
	switch {
	case o.Status == model.OrderStatusPending:
		return 1
	case o.Status == model.OrderStatusPaid && o.HasPendingInvoice():
		return 2
	default:
		return 3
	}
}

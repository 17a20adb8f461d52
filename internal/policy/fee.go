package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultFeeRate is the platform withdrawal service fee.
var DefaultFeeRate = decimal.RequireFromString("0.065")

// FeePolicy computes the service fee charged on withdrawals.
type FeePolicy struct {
	rate decimal.Decimal
}

// NewFeePolicy validates rate, which must lie in [0, 1).
func NewFeePolicy(rate decimal.Decimal) (FeePolicy, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return FeePolicy{}, fmt.Errorf("fee rate %s out of range [0, 1)", rate)
	}
	return FeePolicy{rate: rate}, nil
}

// Rate returns the configured fee rate.
func (p FeePolicy) Rate() decimal.Decimal {
	return p.rate
}

// Fee returns balance*rate rounded to cents.
func (p FeePolicy) Fee(balance decimal.Decimal) decimal.Decimal {
	return balance.Mul(p.rate).Round(2)
}

// Net returns what the payee receives after the fee.
func (p FeePolicy) Net(balance decimal.Decimal) decimal.Decimal {
	return balance.Sub(p.Fee(balance))
}

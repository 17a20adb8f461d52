package policy

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFeePolicy(t *testing.T) {
	p, err := NewFeePolicy(DefaultFeeRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		balance string
		fee     string
		net     string
	}{
		{"1000", "65", "935"},
		{"12000", "780", "11220"},
		{"0", "0", "0"},
		{"10.01", "0.65", "9.36"},
	}
	for _, tc := range cases {
		t.Run(tc.balance, func(t *testing.T) {
			balance := decimal.RequireFromString(tc.balance)
			if got := p.Fee(balance); !got.Equal(decimal.RequireFromString(tc.fee)) {
				t.Fatalf("expected fee %s, got %s", tc.fee, got)
			}
			if got := p.Net(balance); !got.Equal(decimal.RequireFromString(tc.net)) {
				t.Fatalf("expected net %s, got %s", tc.net, got)
			}
		})
	}

	if !p.Rate().Equal(decimal.RequireFromString("0.065")) {
		t.Fatalf("unexpected rate %s", p.Rate())
	}
}

func TestNewFeePolicyRejectsOutOfRange(t *testing.T) {
	for _, rate := range []string{"-0.01", "1", "1.5"} {
		if _, err := NewFeePolicy(decimal.RequireFromString(rate)); err == nil {
			t.Fatalf("expected error for rate %s", rate)
		}
	}
	if _, err := NewFeePolicy(decimal.Zero); err != nil {
		t.Fatalf("zero rate should be allowed: %v", err)
	}
}

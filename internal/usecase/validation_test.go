package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
)

func TestValidateOrderInput(t *testing.T) {
	tests := []struct {
		name string
		in   CreateOrderInput
		want error
	}{
		{"valid", CreateOrderInput{ProjectName: " Design ", Details: "logo", Amount: decimal.NewFromInt(1000)}, nil},
		{"blank project", CreateOrderInput{ProjectName: "  ", Details: "logo", Amount: decimal.NewFromInt(1)}, domainErrors.ErrInvalidProjectName},
		{"blank details", CreateOrderInput{ProjectName: "Design", Details: "", Amount: decimal.NewFromInt(1)}, domainErrors.ErrInvalidDetails},
		{"zero amount", CreateOrderInput{ProjectName: "Design", Details: "logo", Amount: decimal.Zero}, domainErrors.ErrInvalidAmount},
		{"negative amount", CreateOrderInput{ProjectName: "Design", Details: "logo", Amount: decimal.NewFromInt(-5)}, domainErrors.ErrInvalidAmount},
		{"sub-cent amount", CreateOrderInput{ProjectName: "Design", Details: "logo", Amount: decimal.RequireFromString("0.004")}, domainErrors.ErrInvalidAmount},
		{"fraction of a cent", CreateOrderInput{ProjectName: "Design", Details: "logo", Amount: decimal.RequireFromString("10.125")}, domainErrors.ErrInvalidAmount},
		{"trailing zero scale", CreateOrderInput{ProjectName: "Design", Details: "logo", Amount: decimal.RequireFromString("10.500")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateOrderInput(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tt.want != nil {
				if !errors.Is(err, domainErrors.ErrValidation) {
					t.Fatalf("expected validation kind, got %v", err)
				}
				return
			}
			if got.ProjectName != "Design" {
				t.Fatalf("expected trimmed project name, got %q", got.ProjectName)
			}
		})
	}
}

func TestValidatePayee(t *testing.T) {
	if _, err := ValidatePayee(model.Payee{Name: "Li Lei", IDNumber: " "}); !errors.Is(err, domainErrors.ErrInvalidPayee) {
		t.Fatalf("expected invalid payee, got %v", err)
	}
	p, err := ValidatePayee(model.Payee{Name: " Li Lei ", IDNumber: "110101199003071234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Li Lei" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
}

func TestMaskIDNumber(t *testing.T) {
	cases := map[string]string{
		"110101199003071234": "**************1234",
		"123":                "***",
		"":                   "",
	}
	for in, want := range cases {
		if got := MaskIDNumber(in); got != want {
			t.Errorf("MaskIDNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

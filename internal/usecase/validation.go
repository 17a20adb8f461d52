package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// CreateOrderInput carries the payee's payment request.
type CreateOrderInput struct {
	ProjectName string
	Details     string
	Amount      decimal.Decimal
}

const amountPlaces = 2

// ValidateOrderInput trims text fields and checks the amount is a positive
// value in whole cents.
func ValidateOrderInput(in CreateOrderInput) (CreateOrderInput, error) {
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	in.Details = strings.TrimSpace(in.Details)

	if in.ProjectName == "" {
		return CreateOrderInput{}, domainErrors.ErrInvalidProjectName
	}
	if in.Details == "" {
		return CreateOrderInput{}, domainErrors.ErrInvalidDetails
	}
	if !in.Amount.IsPositive() || !in.Amount.Equal(in.Amount.Truncate(amountPlaces)) {
		return CreateOrderInput{}, domainErrors.ErrInvalidAmount
	}
	return in, nil
}

// ValidatePayee requires the real-name confirmation fields.
func ValidatePayee(p model.Payee) (model.Payee, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.IDNumber = strings.TrimSpace(p.IDNumber)
	if p.Name == "" || p.IDNumber == "" {
		return model.Payee{}, domainErrors.ErrInvalidPayee
	}
	return p, nil
}

// MaskIDNumber keeps the last four characters of an identity number.
func MaskIDNumber(id string) string {
	n := utf8.RuneCountInString(id)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	runes := []rune(id)
	return strings.Repeat("*", n-4) + string(runes[n-4:])
}

package lifecycle

import (
	"strings"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// NormalizeInvoice trims the payer's input and checks the fields required by
// the invoice type. Bank and contact fields are dropped for GENERAL invoices.
func NormalizeInvoice(info model.InvoiceInfo) (model.InvoiceInfo, error) {
	out := model.InvoiceInfo{
		Type:        model.InvoiceType(strings.ToUpper(strings.TrimSpace(string(info.Type)))),
		CompanyName: strings.TrimSpace(info.CompanyName),
		TaxID:       strings.TrimSpace(info.TaxID),
		Email:       strings.TrimSpace(info.Email),
		SubmittedAt: info.SubmittedAt,
	}

	if out.CompanyName == "" || out.TaxID == "" || !strings.Contains(out.Email, "@") {
		return model.InvoiceInfo{}, domainErrors.ErrInvalidInvoice
	}

	switch out.Type {
	case model.InvoiceTypeGeneral:
		return out, nil
	case model.InvoiceTypeSpecial:
		out.Address = strings.TrimSpace(info.Address)
		out.Phone = strings.TrimSpace(info.Phone)
		out.BankName = strings.TrimSpace(info.BankName)
		out.BankAccount = strings.TrimSpace(info.BankAccount)
		if out.Address == "" || out.Phone == "" || out.BankName == "" || out.BankAccount == "" {
			return model.InvoiceInfo{}, domainErrors.ErrInvalidInvoice
		}
		return out, nil
	default:
		return model.InvoiceInfo{}, domainErrors.ErrInvalidInvoice
	}
}

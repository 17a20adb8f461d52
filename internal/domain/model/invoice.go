package model

import "time"

// InvoiceType selects the tax invoice flavor requested by the payer.
type InvoiceType string

const (
	InvoiceTypeGeneral InvoiceType = "GENERAL"
	InvoiceTypeSpecial InvoiceType = "SPECIAL"
)

// InvoiceInfo holds the payer's invoicing details.
// Address, Phone, BankName and BankAccount are only meaningful for SPECIAL invoices.
type InvoiceInfo struct {
	Type        InvoiceType
	CompanyName string
	TaxID       string
	Email       string
	Address     string
	Phone       string
	BankName    string
	BankAccount string
	SubmittedAt time.Time
	SentAt      *time.Time
}

// Sent reports whether the invoice was delivered to the payer.
func (i InvoiceInfo) Sent() bool {
	return i.SentAt != nil
}

// Clone copies the invoice including its SentAt pointer target.
func (i InvoiceInfo) Clone() InvoiceInfo {
	if i.SentAt != nil {
		sent := *i.SentAt
		i.SentAt = &sent
	}
	return i
}

package dto

import "time"

// InvoiceRequest is submitted by the buyer from the cashier page.
type InvoiceRequest struct {
	Type        string `json:"type"`
	CompanyName string `json:"companyName"`
	TaxID       string `json:"taxId"`
	Email       string `json:"email"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	BankName    string `json:"bankName,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
}

// InvoiceResponse describes the invoice attached to an order.
type InvoiceResponse struct {
	Type        string     `json:"type"`
	CompanyName string     `json:"companyName"`
	TaxID       string     `json:"taxId"`
	Email       string     `json:"email"`
	Address     string     `json:"address,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	BankName    string     `json:"bankName,omitempty"`
	BankAccount string     `json:"bankAccount,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
}

// TransitionResponse reports an order after a lifecycle operation.
type TransitionResponse struct {
	Order   OrderResponse `json:"order"`
	Outcome string        `json:"outcome"`
}

package blob

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

type orderRecord struct {
	ID          string         `json:"id"`
	ProjectName string         `json:"projectName"`
	Amount      json.Number    `json:"amount"`
	Status      string         `json:"status"`
	Details     string         `json:"details"`
	CreatedAt   time.Time      `json:"createdAt"`
	InvoiceInfo *invoiceRecord `json:"invoiceInfo,omitempty"`
	Version     int64          `json:"version,omitempty"`
}

type invoiceRecord struct {
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

func encode(orders []model.Order) ([]byte, error) {
	records := make([]orderRecord, 0, len(orders))
	for _, o := range orders {
		rec := orderRecord{
			ID:          o.ID,
			ProjectName: o.ProjectName,
			Amount:      json.Number(o.Amount.String()),
			Status:      string(o.Status),
			Details:     o.Details,
			CreatedAt:   o.CreatedAt,
			Version:     o.Version,
		}
		if inv := o.Invoice; inv != nil {
			rec.InvoiceInfo = &invoiceRecord{
				Type:        string(inv.Type),
				CompanyName: inv.CompanyName,
				TaxID:       inv.TaxID,
				Email:       inv.Email,
				Address:     inv.Address,
				Phone:       inv.Phone,
				BankName:    inv.BankName,
				BankAccount: inv.BankAccount,
				SubmittedAt: inv.SubmittedAt,
				SentAt:      inv.SentAt,
			}
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

// decode rejects anything that does not describe a valid collection.
func decode(data []byte) ([]model.Order, error) {
	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %s: amount: %w", rec.ID, err)
		}
		status := model.OrderStatus(rec.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("record %s: unknown status %q", rec.ID, rec.Status)
		}

		o := model.Order{
			ID:          rec.ID,
			ProjectName: rec.ProjectName,
			Details:     rec.Details,
			Amount:      amount,
			Status:      status,
			CreatedAt:   rec.CreatedAt,
			Version:     rec.Version,
		}
		if o.Version <= 0 {
			o.Version = 1
		}
		if inv := rec.InvoiceInfo; inv != nil {
			o.Invoice = &model.InvoiceInfo{
				Type:        model.InvoiceType(inv.Type),
				CompanyName: inv.CompanyName,
				TaxID:       inv.TaxID,
				Email:       inv.Email,
				Address:     inv.Address,
				Phone:       inv.Phone,
				BankName:    inv.BankName,
				BankAccount: inv.BankAccount,
				SubmittedAt: inv.SubmittedAt,
				SentAt:      inv.SentAt,
			}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Package invoice renders sent invoices as PDF documents.
package invoice

import (
	"errors"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// Module provides the PDF renderer.
var Module = fx.Provide(NewRenderer)

const dateLayout = "2006-01-02 15:04 MST"

var errNoInvoice = errors.New("order has no invoice")

// Renderer builds invoice PDFs issued from the receiving account.
type Renderer struct {
	issuer model.ReceivingAccount
}

func NewRenderer(issuer model.ReceivingAccount) *Renderer {
	return &Renderer{issuer: issuer}
}

// Render returns the PDF bytes for the order's invoice.
func (r *Renderer) Render(order model.Order) ([]byte, error) {
	inv := order.Invoice
	if inv == nil {
		return nil, errNoInvoice
	}

	m := maroto.New(config.NewBuilder().Build())

	title := "General VAT Invoice"
	if inv.Type == model.InvoiceTypeSpecial {
		title = "Special VAT Invoice"
	}
	m.AddRow(14,
		text.NewCol(12, title, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Left}),
	)

	issued := "not sent"
	if inv.SentAt != nil {
		issued = inv.SentAt.UTC().Format(dateLayout)
	}
	m.AddRow(20,
		col.New(6).Add(
			text.New("Order: "+order.ID, props.Text{Top: 0}),
			text.New("Submitted: "+inv.SubmittedAt.UTC().Format(dateLayout), props.Text{Top: 5}),
			text.New("Issued: "+issued, props.Text{Top: 10}),
		),
		col.New(6),
	)

	buyer := []string{inv.CompanyName, "Tax ID: " + inv.TaxID, inv.Email}
	if inv.Type == model.InvoiceTypeSpecial {
		buyer = append(buyer, inv.Address, inv.Phone, inv.BankName+" "+inv.BankAccount)
	}
	buyerCol := col.New(6).Add(text.New("Bill to", props.Text{Style: fontstyle.Bold}))
	for i, line := range buyer {
		buyerCol.Add(text.New(line, props.Text{Top: float64(5 * (i + 1))}))
	}
	m.AddRow(40,
		col.New(6).Add(
			text.New("Issued by", props.Text{Style: fontstyle.Bold}),
			text.New(r.issuer.AccountName, props.Text{Top: 5}),
			text.New(r.issuer.BankName, props.Text{Top: 10}),
			text.New(r.issuer.AccountNumber, props.Text{Top: 15}),
		),
		buyerCol,
	)

	m.AddRow(10,
		text.NewCol(8, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(12,
		text.NewCol(8, order.ProjectName+" / "+order.Details, props.Text{Size: 9}),
		text.NewCol(4, order.Amount.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(4, "Total "+order.Amount.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

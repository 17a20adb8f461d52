package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/server/http/dto"
)

// BalanceHandler manages balance-related endpoints.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	summary, err := h.facade.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		Available: summary.Available,
		Pending:   summary.Pending,
		Settled:   summary.Settled,
	})
}

// Quote handles GET /api/withdrawal/quote.
func (h *BalanceHandler) Quote(c *gin.Context) {
	q, err := h.facade.WithdrawalQuote(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{Gross: q.Gross, Fee: q.Fee, Net: q.Net, Rate: q.Rate, Orders: q.Orders})
}

// Withdraw handles POST /api/withdrawal.
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	w, err := h.facade.Withdraw(c.Request.Context(), model.Payee{Name: req.Name, IDNumber: req.IDNumber})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithdrawalResponse{
		Name:        w.Payee.Name,
		IDNumber:    w.Payee.IDNumber,
		Gross:       w.Gross,
		Fee:         w.Fee,
		Net:         w.Net,
		Rate:        w.Rate,
		OrderIDs:    w.OrderIDs,
		ProcessedAt: w.ProcessedAt,
	})
}

// Billing handles GET /api/billing.
func (h *BalanceHandler) Billing(c *gin.Context) {
	statement, err := h.facade.Billing(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BillingResponse{
		Orders: toOrderList(statement.Orders, nil),
		Total:  statement.Total,
	})
}

// ReceivingAccount handles GET /api/receiving-account.
func (h *BalanceHandler) ReceivingAccount(c *gin.Context) {
	acc := h.facade.ReceivingAccount()
	c.JSON(http.StatusOK, dto.ReceivingAccountResponse{
		AccountName:   acc.AccountName,
		AccountNumber: acc.AccountNumber,
		BankName:      acc.BankName,
	})
}

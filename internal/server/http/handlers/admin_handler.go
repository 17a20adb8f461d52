package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/lusunpay/internal/server/http/dto"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

// AdminHandler exposes operator endpoints.
type AdminHandler struct {
	orders  OrderFacade
	balance BalanceFacade
	admin   AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(orders OrderFacade, balance BalanceFacade, admin AdminFacade) *AdminHandler {
	return &AdminHandler{orders: orders, balance: balance, admin: admin}
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orders.Orders(ctx, c.Query("q"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.balance.Balance(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminOrdersResponse{
		Orders:  toOrderList(orders, h.orders.CheckoutURL),
		Pending: summary.Pending,
		Settled: summary.Settled,
	})
}

// ConfirmPayment handles POST /api/admin/orders/:id/confirm-payment.
func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	h.transition(c, h.admin.ConfirmPayment)
}

// SendInvoice handles POST /api/admin/orders/:id/send-invoice.
func (h *AdminHandler) SendInvoice(c *gin.Context) {
	h.transition(c, h.admin.SendInvoice)
}

func (h *AdminHandler) transition(c *gin.Context, op func(context.Context, string) (usecase.TransitionResult, error)) {
	res, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransitionResponse(res, h.orders.CheckoutURL(res.Order.ID)))
}

// Reset handles POST /api/debug/reset.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.admin.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

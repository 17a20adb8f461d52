package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/lusunpay/internal/server/http/dto"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ProjectName: req.ProjectName,
		Details:     req.Details,
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+order.ID)
	c.JSON(http.StatusCreated, toOrderResponse(order, h.facade.CheckoutURL(order.ID)))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	prioritized := c.Query("sort") == "priority"
	orders, err := h.facade.Orders(c.Request.Context(), c.Query("q"), prioritized)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderList(orders, h.facade.CheckoutURL))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order, h.facade.CheckoutURL(order.ID)))
}

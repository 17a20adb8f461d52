package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/lusunpay/internal/server/http/dto"
)

// InvoiceHandler serves the buyer invoice endpoints.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Submit handles POST /api/orders/:id/invoice.
func (h *InvoiceHandler) Submit(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	res, err := h.facade.SubmitInvoice(c.Request.Context(), c.Param("id"), toInvoiceInfo(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransitionResponse(res, ""))
}

// Document handles GET /api/orders/:id/invoice/document.
func (h *InvoiceHandler) Document(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.facade.InvoiceDocument(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="invoice-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

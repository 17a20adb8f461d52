package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/server/http/dto"
)

const (
	msgOrderNotFound    = "invalid or expired order"
	msgBadRequest       = "malformed request body"
	msgStorageCorrupted = "order storage is corrupted, reset required"
	msgInternal         = "internal error"
)

// respondError maps domain errors to HTTP responses. Server-side failures are
// attached to the gin context so the request logger reports them.
func respondError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, msgInternal
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		status, msg = http.StatusNotFound, msgOrderNotFound
	case errors.Is(err, domainErrors.ErrInvoiceAlreadySent),
		errors.Is(err, domainErrors.ErrInvoiceNotSent),
		errors.Is(err, domainErrors.ErrVersionConflict):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		status, msg = http.StatusPaymentRequired, err.Error()
	case errors.Is(err, domainErrors.ErrIDSpaceExhausted):
		status, msg = http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, domainErrors.ErrStorageCorrupted):
		msg = msgStorageCorrupted
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgBadRequest})
}

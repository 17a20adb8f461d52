package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"insufficient balance", ErrInsufficientBalance},
		{"version conflict", ErrVersionConflict},
		{"storage corrupted", ErrStorageCorrupted},
		{"id space exhausted", ErrIDSpaceExhausted},
		{"invoice already sent", ErrInvoiceAlreadySent},
		{"invoice not sent", ErrInvoiceNotSent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			if stdErrors.Is(tc.err, ErrValidation) {
				t.Fatalf("did not expect %v to be a validation error", tc.err)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	cases := []error{
		ErrInvalidProjectName,
		ErrInvalidDetails,
		ErrInvalidAmount,
		ErrInvalidInvoice,
		ErrInvalidPayee,
	}

	for _, err := range cases {
		t.Run(err.Error(), func(t *testing.T) {
			if !stdErrors.Is(err, ErrValidation) {
				t.Fatalf("expected %v to match ErrValidation", err)
			}
			wrapped := fmt.Errorf("create order: %w", err)
			if !stdErrors.Is(wrapped, err) || !stdErrors.Is(wrapped, ErrValidation) {
				t.Fatalf("expected wrapped error to keep identity: %v", wrapped)
			}
		})
	}

	if stdErrors.Is(ErrInvalidAmount, ErrInvalidDetails) {
		t.Fatal("validation errors must stay distinguishable")
	}
}

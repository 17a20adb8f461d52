package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrVersionConflict     = errors.New("version conflict")
	ErrStorageCorrupted    = errors.New("storage corrupted")
	ErrIDSpaceExhausted    = errors.New("order id space exhausted")
	ErrInvoiceAlreadySent  = errors.New("invoice already sent")
	ErrInvoiceNotSent      = errors.New("invoice not sent")
)

// ErrValidation groups input validation failures.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidProjectName = validation("project name must not be empty")
	ErrInvalidDetails     = validation("details must not be empty")
	ErrInvalidAmount      = validation("amount must be positive")
	ErrInvalidInvoice     = validation("invalid invoice information")
	ErrInvalidPayee       = validation("payee name and id number are required")
)

type validationError struct {
	msg string
}

func validation(msg string) error {
	return &validationError{msg: msg}
}

func (e *validationError) Error() string { return e.msg }

// Is reports every validation error as ErrValidation.
func (e *validationError) Is(target error) bool { return target == ErrValidation }

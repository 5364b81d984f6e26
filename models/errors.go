package models

import (
	"errors"
	"fmt"
)

// Reasons a payment request can fail validation. A *ValidationError unwraps to
// exactly one of these, so callers can branch with errors.Is.
var (
	ErrMissingField   = errors.New("missing field")
	ErrAmountMismatch = errors.New("amount mismatch")
	ErrInvalidField   = errors.New("invalid field")
)

// ValidationError describes the first problem found with a payment request.
// Field is the logical path of the offending field, e.g. packages[1].products.
// Expected and Actual are only populated for ErrAmountMismatch.
type ValidationError struct {
	Field    string
	Message  string
	Reason   error
	Expected int64
	Actual   int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the reason for the failure
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// NewMissingFieldError returns a validation error for a required field that was not supplied
func NewMissingFieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Reason: ErrMissingField}
}

// NewInvalidFieldError returns a validation error for a field holding a value outside its domain
func NewInvalidFieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Reason: ErrInvalidField}
}

// NewAmountMismatchError returns a validation error for a declared total that
// does not equal the sum of its parts.
func NewAmountMismatchError(field, message string, expected, actual int64) *ValidationError {
	return &ValidationError{
		Field:    field,
		Message:  message,
		Reason:   ErrAmountMismatch,
		Expected: expected,
		Actual:   actual,
	}
}

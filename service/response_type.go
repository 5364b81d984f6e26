package service

import (
	"errors"

	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/transport"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
)

// ResponseType enumerates the outcomes of a service call, for handlers to
// turn into status codes
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response, the payment is not in a state that allows the operation
	Conflict

	// ProviderError response, LINE Pay rejected the call or could not be reached
	ProviderError
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
	"conflict",
	"provider-error",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}

// responseTypeFor classifies an error returned by LinePay
func responseTypeFor(err error) ResponseType {
	var validationErr *models.ValidationError
	var apiErr *transport.APIError
	var transportErr *transport.TransportError

	switch {
	case errors.Is(err, utils.ErrInvalidTransactionID), errors.As(err, &validationErr):
		return InvalidData
	case errors.As(err, &apiErr), errors.As(err, &transportErr):
		return ProviderError
	default:
		return Error
	}
}

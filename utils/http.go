package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NewMessageResponse - convenience function for creating a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// NewErrorResponse builds a response resource from err, naming the offending
// field when err is a validation error
func NewErrorResponse(err error) *ResponseResource {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return &ResponseResource{Message: validationErr.Message, Field: validationErr.Field}
	}
	return NewMessageResponse(err.Error())
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

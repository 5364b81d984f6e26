package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator returns a validator which reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks s against its validate tags and converts the first
// failure into a *ValidationError
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("error validating %T: [%w]", s, err)
	}

	return toValidationError(fieldErrors[0])
}

func toValidationError(fe validator.FieldError) *ValidationError {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return NewMissingFieldError(field, fmt.Sprintf("%s is required", field))
	case "gte", "min":
		return NewInvalidFieldError(field, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	default:
		return NewInvalidFieldError(field, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
	}
}

// fieldPath drops the top level struct name from the namespace, so
// IncomingPaymentRequest.packages[0].id becomes packages[0].id
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return fe.Field()
}

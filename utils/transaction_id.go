package utils

import (
	"errors"
	"fmt"
)

// TransactionIDLength is the number of digits in a LINE Pay transaction id
const TransactionIDLength = 19

// ErrInvalidTransactionID is returned when a transaction id is not exactly 19 digits
var ErrInvalidTransactionID = errors.New("invalid transaction id format")

// ValidateTransactionID checks id is made of exactly 19 ASCII digits
func ValidateTransactionID(id string) error {
	if len(id) != TransactionIDLength {
		return fmt.Errorf("%w: [%s]", ErrInvalidTransactionID, id)
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return fmt.Errorf("%w: [%s]", ErrInvalidTransactionID, id)
		}
	}
	return nil
}

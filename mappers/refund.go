package mappers

import (
	"strconv"

	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

// MapToRefundDB records a LINE Pay refund of amount against a payment
func MapToRefundDB(response models.RefundResponse, amount int64) models.RefundDB {
	return models.RefundDB{
		RefundTransactionID: strconv.FormatInt(response.RefundTransactionID, 10),
		Amount:              amount,
		RefundedAt:          response.RefundTransactionDate,
	}
}

// MapToRefundRest returns the public view of a stored refund
func MapToRefundRest(refund models.RefundDB, currency models.Currency) models.RefundRest {
	return models.RefundRest{
		RefundTransactionID: refund.RefundTransactionID,
		Amount:              models.FromMinorUnits(refund.Amount, currency),
		RefundedAt:          refund.RefundedAt,
	}
}

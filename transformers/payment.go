package transformers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/companieshouse/linepay.api.ch.gov.uk/mappers"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

// PaymentRecordTransformer transforms payments between LINE Pay, database and rest models
type PaymentRecordTransformer struct{}

// TransformToDB creates the record of a payment request LINE Pay has accepted
func (pt PaymentRecordTransformer) TransformToDB(body models.RequestPaymentBody, response models.RequestPaymentResponse, status string, createdAt time.Time) models.PaymentRecordDB {
	record := models.PaymentRecordDB{
		OrderID:       body.OrderID,
		TransactionID: strconv.FormatInt(response.TransactionID, 10),
		Amount:        body.Amount,
		Currency:      body.Currency,
		PaymentURL:    response.PaymentURL.Web,
		Status:        status,
		CreatedAt:     createdAt,
	}

	if body.Options != nil && body.Options.Payment != nil {
		payment := body.Options.Payment
		if payment.Capture != nil {
			record.DelayedCapture = !*payment.Capture
		}
		if payment.PayType != nil {
			record.PayType = *payment.PayType
		}
	}

	return record
}

// TransformToRest transforms a payment record into its rest model, formatting
// amounts in the payment's currency. A record whose currency is not supported
// cannot be formatted and returns an error.
func (pt PaymentRecordTransformer) TransformToRest(record models.PaymentRecordDB) (models.PaymentRecordRest, error) {
	currency, err := models.ParseCurrency(record.Currency)
	if err != nil {
		return models.PaymentRecordRest{}, fmt.Errorf("error reading currency of payment record for order [%s]: [%w]", record.OrderID, err)
	}

	rest := models.PaymentRecordRest{
		OrderID:        record.OrderID,
		TransactionID:  record.TransactionID,
		Amount:         models.FromMinorUnits(record.Amount, currency),
		Currency:       record.Currency,
		DelayedCapture: record.DelayedCapture,
		PaymentURL:     record.PaymentURL,
		Status:         record.Status,
		CreatedAt:      record.CreatedAt,
		CompletedAt:    record.CompletedAt,
		RefundedAmount: models.FromMinorUnits(record.RefundedAmount, currency),
	}

	for _, refund := range record.Refunds {
		rest.Refunds = append(rest.Refunds, mappers.MapToRefundRest(refund, currency))
	}

	return rest, nil
}

package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/dao"
	"github.com/companieshouse/linepay.api.ch.gov.uk/mappers"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

// RefundService refunds payments taken by PaymentService
type RefundService struct {
	PaymentService *PaymentService
	Config         config.Config
}

// CreateRefund refunds a confirmed payment on LINE Pay and saves the refund
// to the payment record. Without an amount the remaining balance is refunded.
func (service *RefundService) CreateRefund(req *http.Request, transactionID string, createRefundResource models.CreateRefundRequest) (*models.PaymentRecordRest, *models.RefundRest, ResponseType, error) {
	if err := models.ValidateStruct(&createRefundResource); err != nil {
		return nil, nil, InvalidData, err
	}

	record, response, err := service.PaymentService.getRecordByTransactionID(req, transactionID)
	if err != nil {
		return nil, nil, response, err
	}

	if record.Status != Confirmed.String() && record.Status != PartiallyRefunded.String() {
		return nil, nil, Conflict, fmt.Errorf("payment for transaction [%s] cannot be refunded as it is %s", transactionID, record.Status)
	}

	currency, err := models.ParseCurrency(record.Currency)
	if err != nil {
		return nil, nil, Error, fmt.Errorf("error reading stored payment currency: [%v]", err)
	}

	available := record.Amount - record.RefundedAmount
	amount := available
	if createRefundResource.Amount != "" {
		amount, err = models.ToMinorUnits(createRefundResource.Amount, currency)
		if err != nil {
			return nil, nil, InvalidData, models.NewInvalidFieldError("amount", err.Error())
		}
		if amount <= 0 {
			return nil, nil, InvalidData, models.NewInvalidFieldError("amount", "refund amount must be greater than zero")
		}
	}

	if amount > available {
		err = errors.New("refund amount is higher than available amount")
		return nil, nil, InvalidData, err
	}

	// LINE Pay refunds the original amount when none is given, which is only
	// right for the first refund of the whole payment
	var refundAmount *int64
	if createRefundResource.Amount != "" || record.RefundedAmount > 0 {
		refundAmount = &amount
	}

	refund, err := service.PaymentService.LinePay.Refund(req.Context(), transactionID, refundAmount)
	if err != nil {
		err = fmt.Errorf("error creating refund in LINE Pay: [%w]", err)
		log.ErrorR(req, err)
		return nil, nil, responseTypeFor(err), err
	}

	refundDB := mappers.MapToRefundDB(*refund, amount)
	status := PartiallyRefunded.String()
	if record.RefundedAmount+amount == record.Amount {
		status = Refunded.String()
	}

	// Save refund information to mongoDB, only if no other refund was saved since the read
	err = service.PaymentService.DAO.AddRefund(record.OrderID, record.RefundedAmount, refundDB, status)
	if errors.Is(err, dao.ErrRecordChanged) {
		err = fmt.Errorf("refund [%s] made in LINE Pay but the payment record changed: [%w]", refundDB.RefundTransactionID, err)
		log.ErrorR(req, err, log.Data{"transaction_id": transactionID, "refund_transaction_id": refundDB.RefundTransactionID})
		return nil, nil, Conflict, err
	}
	if err != nil {
		err = fmt.Errorf("error saving refund on database: [%v]", err)
		log.Error(err)
		return nil, nil, Error, err
	}

	record.Refunds = append(record.Refunds, refundDB)
	record.RefundedAmount += amount
	record.Status = status

	log.InfoR(req, "payment refunded", log.Data{
		"transaction_id":        transactionID,
		"refund_transaction_id": refundDB.RefundTransactionID,
		"amount":                models.FromMinorUnits(amount, currency),
	})

	paymentRecord, response, err := toRest(req, record)
	if err != nil {
		return nil, nil, response, err
	}
	refundRest := mappers.MapToRefundRest(refundDB, currency)
	return paymentRecord, &refundRest, Success, nil
}

package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/dao"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/transformers"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
)

// PaymentService takes payments through LINE Pay and keeps a record of each
// one against the merchant's order id
type PaymentService struct {
	DAO     dao.DAO
	LinePay LinePay
	Config  config.Config
}

// CreatePayment validates an incoming payment, requests it from LINE Pay and
// stores a pending record of it
func (service *PaymentService) CreatePayment(req *http.Request, incoming models.IncomingPaymentRequest) (*models.CreatePaymentResponse, ResponseType, error) {
	if err := models.ValidateStruct(&incoming); err != nil {
		return nil, InvalidData, err
	}

	paymentRequest, err := service.NewPaymentRequest(incoming)
	if err != nil {
		return nil, InvalidData, err
	}

	body, err := paymentRequest.Build()
	if err != nil {
		return nil, InvalidData, err
	}

	existing, err := service.DAO.GetPaymentRecord(body.OrderID)
	if err != nil {
		err = fmt.Errorf("error getting payment record from db: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if existing != nil {
		return nil, Conflict, fmt.Errorf("a payment already exists for order [%s]", body.OrderID)
	}

	response, err := service.LinePay.RequestPayment(req.Context(), body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error requesting payment from LINE Pay: [%v]", err), log.Data{"order_id": body.OrderID})
		return nil, responseTypeFor(err), err
	}

	record := transformers.PaymentRecordTransformer{}.TransformToDB(*body, *response, Pending.String(), time.Now().Truncate(time.Millisecond))

	err = service.DAO.CreatePaymentRecord(&record)
	if errors.Is(err, dao.ErrDuplicateRecord) {
		err = fmt.Errorf("a payment was created for order [%s] while this one was requested: [%w]", record.OrderID, err)
		log.ErrorR(req, err, log.Data{"order_id": record.OrderID, "transaction_id": record.TransactionID})
		return nil, Conflict, err
	}
	if err != nil {
		err = fmt.Errorf("error writing payment record to db: [%v]", err)
		log.ErrorR(req, err, log.Data{"order_id": record.OrderID, "transaction_id": record.TransactionID})
		return nil, Error, err
	}

	log.InfoR(req, "created LINE Pay payment", log.Data{
		"order_id":       record.OrderID,
		"transaction_id": record.TransactionID,
		"amount":         models.FromMinorUnits(record.Amount, paymentRequest.currency),
		"currency":       record.Currency,
	})

	return &models.CreatePaymentResponse{
		OrderID:            record.OrderID,
		TransactionID:      record.TransactionID,
		PaymentURL:         response.PaymentURL.Web,
		AppPaymentURL:      response.PaymentURL.App,
		PaymentAccessToken: response.PaymentAccessToken,
	}, Success, nil
}

// GetPayment returns the record of an order's payment
func (service *PaymentService) GetPayment(req *http.Request, orderID string) (*models.PaymentRecordRest, ResponseType, error) {
	record, responseType, err := service.getRecord(req, orderID)
	if err != nil {
		return nil, responseType, err
	}

	return toRest(req, record)
}

// ConfirmPayment completes a payment the user has approved on LINE Pay. The
// amount and currency confirmed are the ones stored when the payment was
// created. A payment that is already confirmed is returned as it is.
func (service *PaymentService) ConfirmPayment(req *http.Request, transactionID, orderID string) (*models.PaymentRecordRest, ResponseType, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return nil, InvalidData, err
	}

	record, responseType, err := service.getRecord(req, orderID)
	if err != nil {
		return nil, responseType, err
	}

	if record.TransactionID != transactionID {
		return nil, InvalidData, fmt.Errorf("transaction [%s] does not belong to order [%s]", transactionID, orderID)
	}

	switch record.Status {
	case Pending.String():
	case Confirmed.String(), Authorized.String():
		log.InfoR(req, "payment already confirmed", log.Data{"order_id": orderID, "status": record.Status})
		return toRest(req, record)
	default:
		return nil, Conflict, fmt.Errorf("payment for order [%s] cannot be confirmed as it is %s", orderID, record.Status)
	}

	currency, err := models.ParseCurrency(record.Currency)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading stored payment currency: [%v]", err)
	}

	_, err = service.LinePay.Confirm(req.Context(), transactionID, record.Amount, currency)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error confirming payment with LINE Pay: [%v]", err), log.Data{"order_id": orderID})
		return nil, responseTypeFor(err), err
	}

	status := Confirmed
	if record.DelayedCapture {
		status = Authorized
	}

	return service.updateStatus(req, record, status)
}

// CancelPayment marks a pending payment as cancelled after the user abandons it
func (service *PaymentService) CancelPayment(req *http.Request, orderID string) (*models.PaymentRecordRest, ResponseType, error) {
	record, responseType, err := service.getRecord(req, orderID)
	if err != nil {
		return nil, responseType, err
	}

	switch record.Status {
	case Pending.String():
	case Cancelled.String():
		return toRest(req, record)
	default:
		return nil, Conflict, fmt.Errorf("payment for order [%s] cannot be cancelled as it is %s", orderID, record.Status)
	}

	return service.updateStatus(req, record, Cancelled)
}

// CapturePayment takes payment for an authorized transaction
func (service *PaymentService) CapturePayment(req *http.Request, transactionID string) (*models.PaymentRecordRest, ResponseType, error) {
	record, responseType, err := service.getAuthorizedRecord(req, transactionID)
	if err != nil {
		return nil, responseType, err
	}

	currency, err := models.ParseCurrency(record.Currency)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading stored payment currency: [%v]", err)
	}

	_, err = service.LinePay.Capture(req.Context(), transactionID, record.Amount, currency)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing payment with LINE Pay: [%v]", err), log.Data{"transaction_id": transactionID})
		return nil, responseTypeFor(err), err
	}

	return service.updateStatus(req, record, Confirmed)
}

// VoidPayment releases an authorized transaction without taking payment
func (service *PaymentService) VoidPayment(req *http.Request, transactionID string) (*models.PaymentRecordRest, ResponseType, error) {
	record, responseType, err := service.getAuthorizedRecord(req, transactionID)
	if err != nil {
		return nil, responseType, err
	}

	err = service.LinePay.Void(req.Context(), transactionID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error voiding payment with LINE Pay: [%v]", err), log.Data{"transaction_id": transactionID})
		return nil, responseTypeFor(err), err
	}

	return service.updateStatus(req, record, Voided)
}

// GetPaymentStatus asks LINE Pay how far a transaction has progressed
func (service *PaymentService) GetPaymentStatus(req *http.Request, transactionID string) (*models.PaymentStatusResponse, ResponseType, error) {
	status, err := service.LinePay.CheckStatus(req.Context(), transactionID)
	if err != nil {
		return nil, responseTypeFor(err), err
	}
	return status, Success, nil
}

// GetPaymentStatuses asks LINE Pay for the status of several transactions
func (service *PaymentService) GetPaymentStatuses(req *http.Request, transactionIDs []string) ([]models.PaymentStatusResponse, ResponseType, error) {
	if len(transactionIDs) == 0 {
		return nil, InvalidData, errors.New("no transaction ids supplied")
	}

	statuses, err := service.LinePay.CheckStatuses(req.Context(), transactionIDs)
	if err != nil {
		return nil, responseTypeFor(err), err
	}
	return statuses, Success, nil
}

// GetPaymentDetails looks up payments on LINE Pay
func (service *PaymentService) GetPaymentDetails(req *http.Request, query models.DetailsQuery) ([]models.PaymentDetail, ResponseType, error) {
	if len(query.TransactionIDs) == 0 && len(query.OrderIDs) == 0 {
		return nil, InvalidData, errors.New("a transaction id or order id is required")
	}

	details, err := service.LinePay.GetDetails(req.Context(), query)
	if err != nil {
		return nil, responseTypeFor(err), err
	}
	return details, Success, nil
}

func (service *PaymentService) getRecord(req *http.Request, orderID string) (*models.PaymentRecordDB, ResponseType, error) {
	if orderID == "" {
		return nil, InvalidData, errors.New("order id not supplied")
	}

	record, err := service.DAO.GetPaymentRecord(orderID)
	if err != nil {
		err = fmt.Errorf("error getting payment record from db: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if record == nil {
		return nil, NotFound, fmt.Errorf("payment for order [%s] not found", orderID)
	}
	return record, Success, nil
}

func (service *PaymentService) getRecordByTransactionID(req *http.Request, transactionID string) (*models.PaymentRecordDB, ResponseType, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return nil, InvalidData, err
	}

	record, err := service.DAO.GetPaymentRecordByTransactionID(transactionID)
	if err != nil {
		err = fmt.Errorf("error getting payment record from db: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if record == nil {
		return nil, NotFound, fmt.Errorf("payment for transaction [%s] not found", transactionID)
	}
	return record, Success, nil
}

func (service *PaymentService) getAuthorizedRecord(req *http.Request, transactionID string) (*models.PaymentRecordDB, ResponseType, error) {
	record, responseType, err := service.getRecordByTransactionID(req, transactionID)
	if err != nil {
		return nil, responseType, err
	}
	if record.Status != Authorized.String() {
		return nil, Conflict, fmt.Errorf("payment for transaction [%s] is %s, not %s", transactionID, record.Status, Authorized)
	}
	return record, Success, nil
}

func (service *PaymentService) updateStatus(req *http.Request, record *models.PaymentRecordDB, status PaymentStatus) (*models.PaymentRecordRest, ResponseType, error) {
	record.Status = status.String()
	if record.CompletedAt == nil {
		completedAt := time.Now().Truncate(time.Millisecond)
		record.CompletedAt = &completedAt
	}

	err := service.DAO.PatchPaymentRecord(record.OrderID, record)
	if err != nil {
		err = fmt.Errorf("error setting payment status: [%v]", err)
		log.ErrorR(req, err, log.Data{"order_id": record.OrderID, "status": record.Status})
		return nil, Error, err
	}

	log.InfoR(req, "payment status updated", log.Data{"order_id": record.OrderID, "transaction_id": record.TransactionID, "status": record.Status})

	return toRest(req, record)
}

func toRest(req *http.Request, record *models.PaymentRecordDB) (*models.PaymentRecordRest, ResponseType, error) {
	rest, err := transformers.PaymentRecordTransformer{}.TransformToRest(*record)
	if err != nil {
		log.ErrorR(req, err, log.Data{"order_id": record.OrderID, "currency": record.Currency})
		return nil, Error, err
	}
	return &rest, Success, nil
}

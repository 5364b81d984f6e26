package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/transport"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
	"golang.org/x/sync/errgroup"
)

const (
	requestPaymentPath = "/v4/payments/request"
	paymentDetailsPath = "/v4/payments/requests"
	confirmPathFormat  = "/v4/payments/%s/confirm"
	capturePathFormat  = "/v4/payments/authorizations/%s/capture"
	voidPathFormat     = "/v4/payments/authorizations/%s/void"
	refundPathFormat   = "/v4/payments/%s/refund"
	checkPathFormat    = "/v4/payments/requests/%s/check"

	defaultStatusCheckLimit = 4
)

// Transport sends signed requests to LINE Pay
type Transport interface {
	SendRequest(ctx context.Context, method, path string, body interface{}, query url.Values) (*transport.Response, error)
}

// LinePay is the set of LINE Pay Online operations the service relies on
type LinePay interface {
	RequestPayment(ctx context.Context, body *models.RequestPaymentBody) (*models.RequestPaymentResponse, error)
	Confirm(ctx context.Context, transactionID string, amount int64, currency models.Currency) (*models.ConfirmResponse, error)
	Capture(ctx context.Context, transactionID string, amount int64, currency models.Currency) (*models.CaptureResponse, error)
	Void(ctx context.Context, transactionID string) error
	Refund(ctx context.Context, transactionID string, refundAmount *int64) (*models.RefundResponse, error)
	GetDetails(ctx context.Context, query models.DetailsQuery) ([]models.PaymentDetail, error)
	CheckStatus(ctx context.Context, transactionID string) (*models.PaymentStatusResponse, error)
	CheckStatuses(ctx context.Context, transactionIDs []string) ([]models.PaymentStatusResponse, error)
}

// LinePayService calls the LINE Pay Online v4 API through Client
type LinePayService struct {
	Client Transport

	// StatusCheckLimit bounds the concurrent requests made by CheckStatuses
	StatusCheckLimit int
}

// NewLinePayService returns a service backed by a signing transport client
func NewLinePayService(cfg transport.Config) (*LinePayService, error) {
	client, err := transport.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating LINE Pay client: [%w]", err)
	}
	return &LinePayService{Client: client}, nil
}

// Payment returns a new payment request which is sent through this service
func (service *LinePayService) Payment() *RequestPayment {
	return NewRequestPayment(service)
}

// RequestPayment posts a built payment request. Use Payment to build and
// validate the body.
func (service *LinePayService) RequestPayment(ctx context.Context, body *models.RequestPaymentBody) (*models.RequestPaymentResponse, error) {
	var response models.RequestPaymentResponse
	if err := service.call(ctx, http.MethodPost, requestPaymentPath, body, nil, &response); err != nil {
		return nil, err
	}

	log.Info("LINE Pay payment requested", log.Data{"order_id": body.OrderID, "transaction_id": response.TransactionID})

	return &response, nil
}

// Confirm completes a payment the user has approved
func (service *LinePayService) Confirm(ctx context.Context, transactionID string, amount int64, currency models.Currency) (*models.ConfirmResponse, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}

	var response models.ConfirmResponse
	body := models.ConfirmRequest{Amount: amount, Currency: currency.String()}
	if err := service.call(ctx, http.MethodPost, fmt.Sprintf(confirmPathFormat, transactionID), body, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Capture takes payment for a transaction that was confirmed with capture disabled
func (service *LinePayService) Capture(ctx context.Context, transactionID string, amount int64, currency models.Currency) (*models.CaptureResponse, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}

	var response models.CaptureResponse
	body := models.ConfirmRequest{Amount: amount, Currency: currency.String()}
	if err := service.call(ctx, http.MethodPost, fmt.Sprintf(capturePathFormat, transactionID), body, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Void releases an authorization that has not been captured
func (service *LinePayService) Void(ctx context.Context, transactionID string) error {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return err
	}

	return service.call(ctx, http.MethodPost, fmt.Sprintf(voidPathFormat, transactionID), struct{}{}, nil, nil)
}

// Refund refunds refundAmount of a transaction, or all of it when refundAmount is nil
func (service *LinePayService) Refund(ctx context.Context, transactionID string, refundAmount *int64) (*models.RefundResponse, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}

	var response models.RefundResponse
	body := models.RefundRequest{RefundAmount: refundAmount}
	if err := service.call(ctx, http.MethodPost, fmt.Sprintf(refundPathFormat, transactionID), body, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetDetails looks up payments by transaction id or order id
func (service *LinePayService) GetDetails(ctx context.Context, query models.DetailsQuery) ([]models.PaymentDetail, error) {
	if len(query.TransactionIDs) == 0 && len(query.OrderIDs) == 0 {
		return nil, errors.New("a transaction id or order id is required to get payment details")
	}
	for _, id := range query.TransactionIDs {
		if err := utils.ValidateTransactionID(id); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	if len(query.TransactionIDs) > 0 {
		params.Set("transactionId", strings.Join(query.TransactionIDs, ","))
	}
	if len(query.OrderIDs) > 0 {
		params.Set("orderId", strings.Join(query.OrderIDs, ","))
	}
	if len(query.Fields) > 0 {
		params.Set("fields", strings.Join(query.Fields, ","))
	}

	details := []models.PaymentDetail{}
	if err := service.call(ctx, http.MethodGet, paymentDetailsPath, nil, params, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// CheckStatus reports how far a payment has progressed. The check api
// answers with a return code per state, so codes other than 0000 are only an
// error when they are not one of those states.
func (service *LinePayService) CheckStatus(ctx context.Context, transactionID string) (*models.PaymentStatusResponse, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}

	response, err := service.Client.SendRequest(ctx, http.MethodGet, fmt.Sprintf(checkPathFormat, transactionID), nil, nil)
	if err != nil {
		return nil, err
	}

	status, ok := models.CheckStatusFromReturnCode(response.ReturnCode)
	if !ok {
		return nil, response.Err()
	}

	return &models.PaymentStatusResponse{
		TransactionID: transactionID,
		Status:        status,
		ReturnCode:    response.ReturnCode,
		ReturnMessage: response.ReturnMessage,
	}, nil
}

// CheckStatuses checks several transactions concurrently. Results are in the
// same order as transactionIDs; the first failure cancels the remaining checks.
func (service *LinePayService) CheckStatuses(ctx context.Context, transactionIDs []string) ([]models.PaymentStatusResponse, error) {
	limit := service.StatusCheckLimit
	if limit <= 0 {
		limit = defaultStatusCheckLimit
	}

	results := make([]models.PaymentStatusResponse, len(transactionIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range transactionIDs {
		g.Go(func() error {
			status, err := service.CheckStatus(ctx, id)
			if err != nil {
				return fmt.Errorf("error checking status of transaction [%s]: [%w]", id, err)
			}
			results[i] = *status
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// call sends a request and decodes the info of a successful response into out
func (service *LinePayService) call(ctx context.Context, method, path string, body interface{}, query url.Values, out interface{}) error {
	response, err := service.Client.SendRequest(ctx, method, path, body, query)
	if err != nil {
		return err
	}
	if err := response.Err(); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return response.DecodeInfo(out)
}

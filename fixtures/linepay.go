package fixtures

import (
	"encoding/json"
	"time"

	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/transport"
)

const (
	OrderID             = "order-1"
	TransactionID       = "2024010112345678901"
	TransactionIDNumber = int64(2024010112345678901)
	RefundTransactionID = int64(2024010112345678999)
	PaymentURL          = "https://sandbox-web-pay.line.me/web/payment/wait?transactionReserveId=abc"
	AppPaymentURL       = "line://pay/payment/abc"
	PaymentAccessToken  = "187568751124"
)

// GetPaymentRecord returns a stored TWD 100 payment with the given status
func GetPaymentRecord(status string) *models.PaymentRecordDB {
	return &models.PaymentRecordDB{
		OrderID:       OrderID,
		TransactionID: TransactionID,
		Amount:        100,
		Currency:      "TWD",
		PaymentURL:    PaymentURL,
		Status:        status,
		CreatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

// GetIncomingPaymentRequest returns a TWD 100 payment of one package holding
// two products of 50
func GetIncomingPaymentRequest() models.IncomingPaymentRequest {
	return models.IncomingPaymentRequest{
		OrderID:  OrderID,
		Amount:   "100",
		Currency: "TWD",
		Packages: []models.IncomingPackage{
			{
				ID:     "pkg-1",
				Amount: "100",
				Products: []models.IncomingProduct{
					{Name: "Pen", Quantity: 2, Price: "50"},
				},
			},
		},
		RedirectURLs: &models.IncomingRedirectURLs{
			ConfirmURL: "https://shop.example.com/confirm",
			CancelURL:  "https://shop.example.com/cancel",
		},
	}
}

// GetRequestPaymentResponse returns LINE Pay's answer to a payment request
func GetRequestPaymentResponse() *models.RequestPaymentResponse {
	return &models.RequestPaymentResponse{
		TransactionID:      TransactionIDNumber,
		PaymentAccessToken: PaymentAccessToken,
		PaymentURL: models.PaymentURL{
			Web: PaymentURL,
			App: AppPaymentURL,
		},
	}
}

// GetRefundResponse returns LINE Pay's answer to a refund
func GetRefundResponse() *models.RefundResponse {
	return &models.RefundResponse{
		RefundTransactionID:   RefundTransactionID,
		RefundTransactionDate: "2024-01-02T10:00:00Z",
	}
}

// GetTransportResponse returns a LINE Pay response envelope carrying info
func GetTransportResponse(returnCode string, info interface{}) *transport.Response {
	response := &transport.Response{
		StatusCode:    200,
		ReturnCode:    returnCode,
		ReturnMessage: "Success.",
	}
	if info != nil {
		data, _ := json.Marshal(info)
		response.Info = data
	}
	return response
}

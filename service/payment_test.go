package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/dao"
	"github.com/companieshouse/linepay.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/transport"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockPaymentService(mockDAO *dao.MockDAO, mockLinePay *MockLinePay, cfg config.Config) *PaymentService {
	return &PaymentService{
		DAO:     mockDAO,
		LinePay: mockLinePay,
		Config:  cfg,
	}
}

func TestUnitPaymentStatus(t *testing.T) {
	Convey("Statuses", t, func() {
		So(Pending.String(), ShouldEqual, "pending")
		So(PartiallyRefunded.String(), ShouldEqual, "partially-refunded")
	})
}

func TestUnitResponseTypeFor(t *testing.T) {
	Convey("Errors are classified", t, func() {
		So(responseTypeFor(utils.ValidateTransactionID("1")), ShouldEqual, InvalidData)
		So(responseTypeFor(models.NewMissingFieldError("amount", "")), ShouldEqual, InvalidData)
		So(responseTypeFor(&transport.APIError{ReturnCode: "1104"}), ShouldEqual, ProviderError)
		So(responseTypeFor(&transport.TransportError{Err: errors.New("timeout")}), ShouldEqual, ProviderError)
		So(responseTypeFor(errors.New("boom")), ShouldEqual, Error)
		So(ProviderError.String(), ShouldEqual, "provider-error")
	})
}

func TestUnitNewPaymentRequest(t *testing.T) {
	Convey("Decimal amounts are converted to minor units", t, func() {
		service := &PaymentService{}
		incoming := models.IncomingPaymentRequest{
			OrderID:  fixtures.OrderID,
			Amount:   "12.50",
			Currency: "USD",
			Packages: []models.IncomingPackage{{
				ID:      "pkg-1",
				Amount:  "12.50",
				UserFee: stringPtr("0.50"),
				Products: []models.IncomingProduct{
					{Name: "Pen", Quantity: 2, Price: "5.00", OriginalPrice: stringPtr("6")},
					{Name: "Ink", Quantity: 1, Price: "2.50", ImageURL: stringPtr("https://shop/ink.png")},
				},
			}},
			RedirectURLs: &models.IncomingRedirectURLs{
				ConfirmURL:     "https://shop/confirm",
				CancelURL:      "https://shop/cancel",
				ConfirmURLType: "SERVER",
			},
			Options: &models.IncomingPaymentOptions{
				Capture: boolPtr(false),
				PayType: stringPtr("NORMAL"),
			},
		}

		request, err := service.NewPaymentRequest(incoming)
		So(err, ShouldBeNil)

		body, err := request.Build()
		So(err, ShouldBeNil)
		So(body.Amount, ShouldEqual, 1250)
		So(body.Currency, ShouldEqual, "USD")
		So(*body.Packages[0].UserFee, ShouldEqual, 50)
		So(body.Packages[0].Products[0].Price, ShouldEqual, 500)
		So(*body.Packages[0].Products[0].OriginalPrice, ShouldEqual, 600)
		So(*body.Packages[0].Products[1].ImageURL, ShouldEqual, "https://shop/ink.png")
		So(body.RedirectURLs.ConfirmURLType, ShouldEqual, "SERVER")
		So(*body.Options.Payment.Capture, ShouldBeFalse)
		So(*body.Options.Payment.PayType, ShouldEqual, "NORMAL")
	})

	Convey("Configured redirect urls are used by default", t, func() {
		service := &PaymentService{Config: config.Config{ConfirmURL: "https://svc/confirm", CancelURL: "https://svc/cancel"}}
		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.RedirectURLs = nil

		request, err := service.NewPaymentRequest(incoming)
		So(err, ShouldBeNil)
		body, err := request.Build()
		So(err, ShouldBeNil)
		So(body.RedirectURLs.ConfirmURL, ShouldEqual, "https://svc/confirm")
	})

	Convey("Without any redirect urls the build fails", t, func() {
		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.RedirectURLs = nil

		request, err := (&PaymentService{}).NewPaymentRequest(incoming)
		So(err, ShouldBeNil)
		_, err = request.Build()
		So(validationError(err).Field, ShouldEqual, "redirectUrls")
	})

	Convey("Unsupported currency", t, func() {
		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.Currency = "XXX"

		_, err := (&PaymentService{}).NewPaymentRequest(incoming)
		So(validationError(err).Field, ShouldEqual, "currency")
		So(errors.Is(err, models.ErrInvalidField), ShouldBeTrue)
	})

	Convey("Too many decimal places for the currency", t, func() {
		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.Packages[0].Products[0].Price = "50.5"

		_, err := (&PaymentService{}).NewPaymentRequest(incoming)
		So(validationError(err).Field, ShouldEqual, "packages[0].products[0].price")
	})

	Convey("Invalid product is reported with its path", t, func() {
		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.Packages[0].Products[0].Quantity = -2

		_, err := (&PaymentService{}).NewPaymentRequest(incoming)
		So(validationError(err).Field, ShouldEqual, "packages[0].products[0].quantity")
	})

	Convey("Unsupported pay type", t, func() {
		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.Options = &models.IncomingPaymentOptions{PayType: stringPtr("ONCE")}

		_, err := (&PaymentService{}).NewPaymentRequest(incoming)
		So(validationError(err).Field, ShouldEqual, "options.pay_type")
	})
}

func TestUnitCreatePayment(t *testing.T) {
	cfg := config.Config{}
	req := httptest.NewRequest(http.MethodPost, "/payments", nil)

	Convey("Incoming request fails validation", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), NewMockLinePay(mockCtrl), cfg)

		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.OrderID = ""

		response, responseType, err := service.CreatePayment(req, incoming)
		So(response, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(validationError(err).Field, ShouldEqual, "order_id")
	})

	Convey("Amounts that do not add up", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), NewMockLinePay(mockCtrl), cfg)

		incoming := fixtures.GetIncomingPaymentRequest()
		incoming.Amount = "200"

		_, responseType, err := service.CreatePayment(req, incoming)
		So(responseType, ShouldEqual, InvalidData)
		So(errors.Is(err, models.ErrAmountMismatch), ShouldBeTrue)
	})

	Convey("Error checking for an existing payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, errors.New("error"))

		_, responseType, err := service.CreatePayment(req, fixtures.GetIncomingPaymentRequest())
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Error)
	})

	Convey("Order already has a payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Pending.String()), nil)

		_, responseType, err := service.CreatePayment(req, fixtures.GetIncomingPaymentRequest())
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Conflict)
	})

	Convey("LINE Pay rejects the request", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, nil)
		mockLinePay.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).Return(nil, &transport.APIError{ReturnCode: "1172"})

		_, responseType, err := service.CreatePayment(req, fixtures.GetIncomingPaymentRequest())
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, ProviderError)
	})

	Convey("Error storing the payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, nil)
		mockLinePay.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).Return(fixtures.GetRequestPaymentResponse(), nil)
		mockDAO.EXPECT().CreatePaymentRecord(gomock.Any()).Return(errors.New("error"))

		_, responseType, err := service.CreatePayment(req, fixtures.GetIncomingPaymentRequest())
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Error)
	})

	Convey("Payment stored for the order by another request", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, nil)
		mockLinePay.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).Return(fixtures.GetRequestPaymentResponse(), nil)
		mockDAO.EXPECT().CreatePaymentRecord(gomock.Any()).Return(fmt.Errorf("error inserting payment record: [%w]", dao.ErrDuplicateRecord))

		response, responseType, err := service.CreatePayment(req, fixtures.GetIncomingPaymentRequest())
		So(response, ShouldBeNil)
		So(errors.Is(err, dao.ErrDuplicateRecord), ShouldBeTrue)
		So(responseType, ShouldEqual, Conflict)
	})

	Convey("Payment created", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		var sent *models.RequestPaymentBody
		var stored *models.PaymentRecordDB
		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, nil)
		mockLinePay.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body *models.RequestPaymentBody) (*models.RequestPaymentResponse, error) {
				sent = body
				return fixtures.GetRequestPaymentResponse(), nil
			})
		mockDAO.EXPECT().CreatePaymentRecord(gomock.Any()).
			DoAndReturn(func(record *models.PaymentRecordDB) error {
				stored = record
				return nil
			})

		response, responseType, err := service.CreatePayment(req, fixtures.GetIncomingPaymentRequest())
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.TransactionID, ShouldEqual, fixtures.TransactionID)
		So(response.PaymentURL, ShouldEqual, fixtures.PaymentURL)
		So(response.AppPaymentURL, ShouldEqual, fixtures.AppPaymentURL)
		So(response.PaymentAccessToken, ShouldEqual, fixtures.PaymentAccessToken)

		So(sent.Amount, ShouldEqual, 100)
		So(sent.Currency, ShouldEqual, "TWD")
		So(sent.Packages[0].Products[0].Price, ShouldEqual, 50)

		So(stored.OrderID, ShouldEqual, fixtures.OrderID)
		So(stored.TransactionID, ShouldEqual, fixtures.TransactionID)
		So(stored.Status, ShouldEqual, Pending.String())
		So(stored.Amount, ShouldEqual, 100)
	})
}

func TestUnitConfirmPayment(t *testing.T) {
	cfg := config.Config{}
	req := httptest.NewRequest(http.MethodGet, "/callback/linepay/confirm", nil)

	Convey("Invalid transaction id", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), NewMockLinePay(mockCtrl), cfg)

		_, responseType, err := service.ConfirmPayment(req, "abc", fixtures.OrderID)
		So(errors.Is(err, utils.ErrInvalidTransactionID), ShouldBeTrue)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Payment not found", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, nil)

		_, responseType, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, NotFound)
	})

	Convey("Error getting payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(nil, errors.New("error"))

		_, responseType, _ := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(responseType, ShouldEqual, Error)
	})

	Convey("Transaction belongs to another order", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Pending.String()), nil)

		_, responseType, err := service.ConfirmPayment(req, "2024010112345678000", fixtures.OrderID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Already confirmed payment is returned without calling LINE Pay", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Confirmed.String()), nil)

		payment, responseType, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Status, ShouldEqual, Confirmed.String())
	})

	Convey("Cancelled payment cannot be confirmed", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Cancelled.String()), nil)

		_, responseType, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Conflict)
	})

	Convey("LINE Pay cannot be reached", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Pending.String()), nil)
		mockLinePay.EXPECT().Confirm(gomock.Any(), fixtures.TransactionID, int64(100), models.TWD).
			Return(nil, &transport.TransportError{Err: errors.New("timeout")})

		_, responseType, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, ProviderError)
	})

	Convey("Error saving the confirmed payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Pending.String()), nil)
		mockLinePay.EXPECT().Confirm(gomock.Any(), fixtures.TransactionID, int64(100), models.TWD).Return(&models.ConfirmResponse{}, nil)
		mockDAO.EXPECT().PatchPaymentRecord(fixtures.OrderID, gomock.Any()).Return(errors.New("error"))

		_, responseType, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Error)
	})

	Convey("Payment confirmed with the stored amount", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Pending.String()), nil)
		mockLinePay.EXPECT().Confirm(gomock.Any(), fixtures.TransactionID, int64(100), models.TWD).Return(&models.ConfirmResponse{}, nil)
		mockDAO.EXPECT().PatchPaymentRecord(fixtures.OrderID, gomock.Any()).Return(nil)

		payment, responseType, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Status, ShouldEqual, Confirmed.String())
		So(payment.CompletedAt, ShouldNotBeNil)
	})

	Convey("Payment with delayed capture is authorized", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		record := fixtures.GetPaymentRecord(Pending.String())
		record.DelayedCapture = true
		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(record, nil)
		mockLinePay.EXPECT().Confirm(gomock.Any(), fixtures.TransactionID, int64(100), models.TWD).Return(&models.ConfirmResponse{}, nil)
		mockDAO.EXPECT().PatchPaymentRecord(fixtures.OrderID, gomock.Any()).Return(nil)

		payment, _, err := service.ConfirmPayment(req, fixtures.TransactionID, fixtures.OrderID)
		So(err, ShouldBeNil)
		So(payment.Status, ShouldEqual, Authorized.String())
	})
}

func TestUnitCancelPayment(t *testing.T) {
	cfg := config.Config{}
	req := httptest.NewRequest(http.MethodGet, "/callback/linepay/cancel", nil)

	Convey("Missing order id", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), NewMockLinePay(mockCtrl), cfg)

		_, responseType, err := service.CancelPayment(req, "")
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Pending payment is cancelled", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Pending.String()), nil)
		mockDAO.EXPECT().PatchPaymentRecord(fixtures.OrderID, gomock.Any()).Return(nil)

		payment, responseType, err := service.CancelPayment(req, fixtures.OrderID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Status, ShouldEqual, Cancelled.String())
	})

	Convey("Cancelling twice", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Cancelled.String()), nil)

		_, responseType, err := service.CancelPayment(req, fixtures.OrderID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Confirmed payment cannot be cancelled", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Confirmed.String()), nil)

		_, responseType, _ := service.CancelPayment(req, fixtures.OrderID)
		So(responseType, ShouldEqual, Conflict)
	})
}

func TestUnitCaptureAndVoidPayment(t *testing.T) {
	cfg := config.Config{}
	req := httptest.NewRequest(http.MethodPost, "/payments/2024010112345678901/capture", nil)

	Convey("Only authorized payments can be captured", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecordByTransactionID(fixtures.TransactionID).Return(fixtures.GetPaymentRecord(Confirmed.String()), nil)

		_, responseType, err := service.CapturePayment(req, fixtures.TransactionID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Conflict)
	})

	Convey("Unknown transaction", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecordByTransactionID(fixtures.TransactionID).Return(nil, nil)

		_, responseType, _ := service.VoidPayment(req, fixtures.TransactionID)
		So(responseType, ShouldEqual, NotFound)
	})

	Convey("Authorized payment is captured", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecordByTransactionID(fixtures.TransactionID).Return(fixtures.GetPaymentRecord(Authorized.String()), nil)
		mockLinePay.EXPECT().Capture(gomock.Any(), fixtures.TransactionID, int64(100), models.TWD).Return(&models.CaptureResponse{}, nil)
		mockDAO.EXPECT().PatchPaymentRecord(fixtures.OrderID, gomock.Any()).Return(nil)

		payment, responseType, err := service.CapturePayment(req, fixtures.TransactionID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Status, ShouldEqual, Confirmed.String())
	})

	Convey("Authorized payment is voided", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecordByTransactionID(fixtures.TransactionID).Return(fixtures.GetPaymentRecord(Authorized.String()), nil)
		mockLinePay.EXPECT().Void(gomock.Any(), fixtures.TransactionID).Return(nil)
		mockDAO.EXPECT().PatchPaymentRecord(fixtures.OrderID, gomock.Any()).Return(nil)

		payment, responseType, err := service.VoidPayment(req, fixtures.TransactionID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Status, ShouldEqual, Voided.String())
	})

	Convey("Void rejected by LINE Pay", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(mockDAO, mockLinePay, cfg)

		mockDAO.EXPECT().GetPaymentRecordByTransactionID(fixtures.TransactionID).Return(fixtures.GetPaymentRecord(Authorized.String()), nil)
		mockLinePay.EXPECT().Void(gomock.Any(), fixtures.TransactionID).Return(&transport.APIError{ReturnCode: "1165"})

		_, responseType, err := service.VoidPayment(req, fixtures.TransactionID)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, ProviderError)
	})
}

func TestUnitGetPaymentStatusAndDetails(t *testing.T) {
	cfg := config.Config{}
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)

	Convey("Status from LINE Pay", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), mockLinePay, cfg)

		expected := &models.PaymentStatusResponse{TransactionID: fixtures.TransactionID, Status: models.CheckStatusAuthorized, ReturnCode: "0110"}
		mockLinePay.EXPECT().CheckStatus(gomock.Any(), fixtures.TransactionID).Return(expected, nil)

		status, responseType, err := service.GetPaymentStatus(req, fixtures.TransactionID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(status, ShouldEqual, expected)
	})

	Convey("Status of a malformed transaction id", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), mockLinePay, cfg)

		mockLinePay.EXPECT().CheckStatus(gomock.Any(), "123").Return(nil, utils.ValidateTransactionID("123"))

		_, responseType, _ := service.GetPaymentStatus(req, "123")
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Statuses of several transactions", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), mockLinePay, cfg)

		ids := []string{fixtures.TransactionID, "2024010112345678902"}
		mockLinePay.EXPECT().CheckStatuses(gomock.Any(), ids).Return([]models.PaymentStatusResponse{{}, {}}, nil)

		statuses, responseType, err := service.GetPaymentStatuses(req, ids)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(statuses, ShouldHaveLength, 2)

		_, responseType, err = service.GetPaymentStatuses(req, nil)
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Details need an id", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), NewMockLinePay(mockCtrl), cfg)

		_, responseType, err := service.GetPaymentDetails(req, models.DetailsQuery{})
		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Details from LINE Pay", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockLinePay := NewMockLinePay(mockCtrl)
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), mockLinePay, cfg)

		query := models.DetailsQuery{OrderIDs: []string{fixtures.OrderID}}
		mockLinePay.EXPECT().GetDetails(gomock.Any(), query).Return([]models.PaymentDetail{{TransactionID: fixtures.TransactionIDNumber}}, nil)

		details, responseType, err := service.GetPaymentDetails(req, query)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(details, ShouldHaveLength, 1)
	})

	Convey("Stored payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(fixtures.GetPaymentRecord(Confirmed.String()), nil)

		payment, responseType, err := service.GetPayment(req, fixtures.OrderID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payment.Amount, ShouldEqual, "100")
	})

	Convey("Stored payment with an unsupported currency", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, NewMockLinePay(mockCtrl), cfg)

		record := fixtures.GetPaymentRecord(Confirmed.String())
		record.Currency = "XYZ"
		mockDAO.EXPECT().GetPaymentRecord(fixtures.OrderID).Return(record, nil)

		payment, responseType, err := service.GetPayment(req, fixtures.OrderID)
		So(err, ShouldNotBeNil)
		So(payment, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
	})
}

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

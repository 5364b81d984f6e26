package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/service"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"
)

// handlePaymentMessage allows us to mock the call to producePaymentMessage for unit tests
var handlePaymentMessage = producePaymentMessage

// HandleCreatePayment requests a payment from LINE Pay and returns the url
// the user should be sent to
func HandleCreatePayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incomingPaymentRequest models.IncomingPaymentRequest
	err := json.NewDecoder(req.Body).Decode(&incomingPaymentRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request body invalid"), http.StatusBadRequest)
		return
	}

	payment, responseType, err := paymentService.CreatePayment(req, incomingPaymentRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating payment: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new payment", log.Data{"order_id": payment.OrderID, "transaction_id": payment.TransactionID, "status": http.StatusCreated})
}

// HandleGetPayment returns the stored record of an order's payment
func HandleGetPayment(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]

	payment, responseType, err := paymentService.GetPayment(req, orderID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting payment: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)
}

// HandleGetPaymentDetails looks payments up on LINE Pay by transaction or order id
func HandleGetPaymentDetails(w http.ResponseWriter, req *http.Request) {
	query := models.DetailsQuery{
		TransactionIDs: queryValues(req, "transactionId"),
		OrderIDs:       queryValues(req, "orderId"),
		Fields:         queryValues(req, "fields"),
	}

	details, responseType, err := paymentService.GetPaymentDetails(req, query)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting payment details: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, details, http.StatusOK)
}

// HandleGetPaymentStatus returns the LINE Pay status of a transaction
func HandleGetPaymentStatus(w http.ResponseWriter, req *http.Request) {
	transactionID := mux.Vars(req)["transaction_id"]

	status, responseType, err := paymentService.GetPaymentStatus(req, transactionID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error checking payment status: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, status, http.StatusOK)
}

// HandleGetPaymentStatuses returns the LINE Pay status of each transaction
// listed in the transactionId query parameter
func HandleGetPaymentStatuses(w http.ResponseWriter, req *http.Request) {
	transactionIDs := queryValues(req, "transactionId")

	statuses, responseType, err := paymentService.GetPaymentStatuses(req, transactionIDs)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error checking payment statuses: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, statuses, http.StatusOK)
}

// HandleCapturePayment takes payment for an authorized transaction
func HandleCapturePayment(w http.ResponseWriter, req *http.Request) {
	transactionID := mux.Vars(req)["transaction_id"]

	payment, responseType, err := paymentService.CapturePayment(req, transactionID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error capturing payment: [%w]", err))
		return
	}

	err = handlePaymentMessage(payment)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing payment kafka message: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)

	log.InfoR(req, "Successful POST request to capture payment", log.Data{"transaction_id": transactionID, "status": http.StatusOK})
}

// HandleVoidPayment releases an authorized transaction
func HandleVoidPayment(w http.ResponseWriter, req *http.Request) {
	transactionID := mux.Vars(req)["transaction_id"]

	payment, responseType, err := paymentService.VoidPayment(req, transactionID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error voiding payment: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)

	log.InfoR(req, "Successful POST request to void payment", log.Data{"transaction_id": transactionID, "status": http.StatusOK})
}

// writeServiceError logs err and writes the status matching responseType.
// Internal errors are not described to the caller.
func writeServiceError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})

	var status int
	switch responseType {
	case service.InvalidData:
		status = http.StatusBadRequest
	case service.NotFound:
		status = http.StatusNotFound
	case service.Conflict:
		status = http.StatusConflict
	case service.ProviderError:
		status = http.StatusBadGateway
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err), status)
}

// queryValues returns the values of a query parameter, splitting comma
// separated lists and dropping empty entries
func queryValues(req *http.Request, key string) []string {
	var values []string
	for _, value := range req.URL.Query()[key] {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/service"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
)

// HandleConfirmCallback confirms a payment once LINE Pay redirects the user
// back with the transactionId and orderId query parameters
func HandleConfirmCallback(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	transactionID := query.Get("transactionId")
	orderID := query.Get("orderId")
	if transactionID == "" || orderID == "" {
		log.ErrorR(req, fmt.Errorf("transaction id or order id not supplied"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("transactionId and orderId are required"), http.StatusBadRequest)
		return
	}

	payment, responseType, err := paymentService.ConfirmPayment(req, transactionID, orderID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error confirming payment: [%w]", err))
		return
	}

	// authorized payments are reported once captured
	if payment.Status == service.Confirmed.String() {
		err = handlePaymentMessage(payment)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error producing payment kafka message: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)

	log.InfoR(req, "payment confirmed", log.Data{"order_id": orderID, "transaction_id": transactionID, "payment_status": payment.Status})
}

// HandleCancelCallback marks a payment cancelled when the user abandons it on LINE Pay
func HandleCancelCallback(w http.ResponseWriter, req *http.Request) {
	orderID := req.URL.Query().Get("orderId")
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("orderId is required"), http.StatusBadRequest)
		return
	}

	payment, responseType, err := paymentService.CancelPayment(req, orderID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error cancelling payment: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)

	log.InfoR(req, "payment cancelled", log.Data{"order_id": orderID})
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/companieshouse/linepay.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"
)

// handleRefundMessage allows us to mock the call to produceRefundMessage for unit tests
var handleRefundMessage = produceRefundMessage

// HandleCreateRefund refunds a payment on LINE Pay. An empty body refunds the
// remaining balance.
func HandleCreateRefund(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transactionID := mux.Vars(req)["transaction_id"]
	if transactionID == "" {
		log.ErrorR(req, fmt.Errorf("transaction id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incomingRefundRequest models.CreateRefundRequest
	err := json.NewDecoder(req.Body).Decode(&incomingRefundRequest)
	if err != nil && !errors.Is(err, io.EOF) {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request body invalid"), http.StatusBadRequest)
		return
	}

	payment, refund, responseType, err := refundService.CreateRefund(req, transactionID, incomingRefundRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating refund: [%w]", err))
		return
	}

	err = handleRefundMessage(payment, refund)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing refund kafka message: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, refund, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new refund", log.Data{"refund_transaction_id": refund.RefundTransactionID, "status": http.StatusCreated})
}

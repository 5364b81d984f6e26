package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/dao"
	"github.com/companieshouse/linepay.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/linepay.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

var paymentService *service.PaymentService
var refundService *service.RefundService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	linePay, err := service.NewLinePayService(cfg.TransportConfig())
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	paymentService = &service.PaymentService{
		DAO:     dao.NewDAO(&cfg),
		LinePay: linePay,
		Config:  cfg,
	}

	refundService = &service.RefundService{
		PaymentService: paymentService,
		Config:         cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	paymentRouter := mainRouter.PathPrefix("/payments").Subrouter()
	paymentRouter.HandleFunc("", HandleCreatePayment).Methods("POST").Name("create-payment")
	paymentRouter.HandleFunc("", HandleGetPaymentDetails).Methods("GET").Name("get-payment-details")
	paymentRouter.HandleFunc("/statuses", HandleGetPaymentStatuses).Methods("GET").Name("get-payment-statuses")
	paymentRouter.HandleFunc("/orders/{order_id}", HandleGetPayment).Methods("GET").Name("get-payment")
	paymentRouter.HandleFunc("/{transaction_id}/status", HandleGetPaymentStatus).Methods("GET").Name("get-payment-status")

	// capture, void and refund move money so need elevated privileges
	privilegedRouter := mainRouter.PathPrefix("/payments/{transaction_id}").Subrouter()
	privilegedRouter.HandleFunc("/capture", HandleCapturePayment).Methods("POST").Name("capture-payment")
	privilegedRouter.HandleFunc("/void", HandleVoidPayment).Methods("POST").Name("void-payment")
	privilegedRouter.HandleFunc("/refund", HandleCreateRefund).Methods("POST").Name("create-refund")

	// LINE Pay redirects the user's browser here so no auth is applied
	callbackRouter := mainRouter.PathPrefix("/callback/linepay").Subrouter()
	callbackRouter.HandleFunc("/confirm", HandleConfirmCallback).Methods("GET").Name("handle-linepay-confirm")
	callbackRouter.HandleFunc("/cancel", HandleCancelCallback).Methods("GET").Name("handle-linepay-cancel")

	paymentRouter.Use(log.Handler, interceptors.PaymentPrivilegesIntercept)
	privilegedRouter.Use(log.Handler, authentication.ElevatedPrivilegesInterceptor)
	callbackRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

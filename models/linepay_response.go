package models

// RequestPaymentResponse is the info returned when a payment request is accepted
type RequestPaymentResponse struct {
	TransactionID      int64      `json:"transactionId"`
	PaymentAccessToken string     `json:"paymentAccessToken"`
	PaymentURL         PaymentURL `json:"paymentUrl"`
}

// PaymentURL holds the urls the user is sent to in order to approve a payment
type PaymentURL struct {
	Web string `json:"web"`
	App string `json:"app"`
}

// ConfirmResponse is the info returned when a payment is confirmed
type ConfirmResponse struct {
	OrderID                 string        `json:"orderId"`
	TransactionID           int64         `json:"transactionId"`
	AuthorizationExpireDate string        `json:"authorizationExpireDate,omitempty"`
	RegKey                  string        `json:"regKey,omitempty"`
	PayInfo                 []PayInfo     `json:"payInfo"`
	Packages                []PackageBody `json:"packages,omitempty"`
}

// PayInfo describes how part of a payment was paid
type PayInfo struct {
	Method                 string `json:"method"`
	Amount                 int64  `json:"amount"`
	CreditCardNickname     string `json:"creditCardNickname,omitempty"`
	CreditCardBrand        string `json:"creditCardBrand,omitempty"`
	MaskedCreditCardNumber string `json:"maskedCreditCardNumber,omitempty"`
}

// CaptureResponse is the info returned when an authorized payment is captured
type CaptureResponse struct {
	OrderID       string    `json:"orderId"`
	TransactionID int64     `json:"transactionId"`
	PayInfo       []PayInfo `json:"payInfo"`
}

// RefundResponse is the info returned when a payment is refunded
type RefundResponse struct {
	RefundTransactionID   int64  `json:"refundTransactionId"`
	RefundTransactionDate string `json:"refundTransactionDate"`
}

// PaymentDetail is one entry of the payment details api
type PaymentDetail struct {
	TransactionID           int64          `json:"transactionId"`
	TransactionDate         string         `json:"transactionDate"`
	TransactionType         string         `json:"transactionType"`
	PayStatus               string         `json:"payStatus,omitempty"`
	ProductName             string         `json:"productName"`
	MerchantName            string         `json:"merchantName,omitempty"`
	Currency                string         `json:"currency"`
	AuthorizationExpireDate string         `json:"authorizationExpireDate,omitempty"`
	OriginalTransactionID   int64          `json:"originalTransactionId,omitempty"`
	PayInfo                 []PayInfo      `json:"payInfo"`
	RefundList              []RefundDetail `json:"refundList,omitempty"`
	Packages                []PackageBody  `json:"packages,omitempty"`
}

// RefundDetail is a refund made against a payment
type RefundDetail struct {
	RefundTransactionID   int64  `json:"refundTransactionId"`
	TransactionType       string `json:"transactionType"`
	RefundAmount          int64  `json:"refundAmount"`
	RefundTransactionDate string `json:"refundTransactionDate"`
}

// CheckStatus is the state of a payment reported by the check status api
type CheckStatus int

const (
	// CheckStatusPending means the user has not yet approved the payment
	CheckStatusPending CheckStatus = 1 + iota

	// CheckStatusAuthorized means the user approved and the payment can be confirmed
	CheckStatusAuthorized

	// CheckStatusCancelled means the user cancelled the payment
	CheckStatusCancelled

	// CheckStatusFailed means the payment failed
	CheckStatusFailed

	// CheckStatusCompleted means the payment has been confirmed
	CheckStatusCompleted
)

var checkStatuses = [...]string{
	"pending",
	"authorized",
	"cancelled",
	"failed",
	"completed",
}

// return codes used by the check status api, keyed to the status they report
var checkStatusCodes = map[string]CheckStatus{
	"0000": CheckStatusPending,
	"0110": CheckStatusAuthorized,
	"0121": CheckStatusCancelled,
	"0122": CheckStatusFailed,
	"0123": CheckStatusCompleted,
}

// CheckStatusFromReturnCode maps a check status return code onto a CheckStatus
func CheckStatusFromReturnCode(code string) (CheckStatus, bool) {
	status, ok := checkStatusCodes[code]
	return status, ok
}

// String representation of `CheckStatus`
func (s CheckStatus) String() string {
	if s < CheckStatusPending || s > CheckStatusCompleted {
		return ""
	}
	return checkStatuses[s-1]
}

// MarshalJSON writes the status as its name
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// PaymentStatusResponse is the result of checking a payment's status
type PaymentStatusResponse struct {
	TransactionID string      `json:"transaction_id"`
	Status        CheckStatus `json:"status"`
	ReturnCode    string      `json:"return_code"`
	ReturnMessage string      `json:"return_message"`
}

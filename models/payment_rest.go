package models

import "time"

// PaymentRecordRest is the public view of a stored payment
type PaymentRecordRest struct {
	OrderID        string       `json:"order_id"`
	TransactionID  string       `json:"transaction_id"`
	Amount         string       `json:"amount"`
	Currency       string       `json:"currency"`
	DelayedCapture bool         `json:"delayed_capture"`
	PaymentURL     string       `json:"payment_url,omitempty"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	RefundedAmount string       `json:"refunded_amount"`
	Refunds        []RefundRest `json:"refunds,omitempty"`
}

// RefundRest is the public view of a refund
type RefundRest struct {
	RefundTransactionID string `json:"refund_transaction_id"`
	Amount              string `json:"amount"`
	RefundedAt          string `json:"refunded_at"`
}

// CreatePaymentResponse is returned once LINE Pay accepts a payment request
type CreatePaymentResponse struct {
	OrderID            string `json:"order_id"`
	TransactionID      string `json:"transaction_id"`
	PaymentURL         string `json:"payment_url"`
	AppPaymentURL      string `json:"app_payment_url,omitempty"`
	PaymentAccessToken string `json:"payment_access_token"`
}

package models

import "time"

// PaymentRecordDB is a LINE Pay payment as stored in the DB, keyed by the
// merchant's order id
type PaymentRecordDB struct {
	OrderID        string     `bson:"_id"`
	TransactionID  string     `bson:"transaction_id"`
	Amount         int64      `bson:"amount"`
	Currency       string     `bson:"currency"`
	DelayedCapture bool       `bson:"delayed_capture"`
	PayType        string     `bson:"pay_type,omitempty"`
	PaymentURL     string     `bson:"payment_url"`
	Status         string     `bson:"status"`
	CreatedAt      time.Time  `bson:"created_at"`
	CompletedAt    *time.Time `bson:"completed_at,omitempty"`
	RefundedAmount int64      `bson:"refunded_amount"`
	Refunds        []RefundDB `bson:"refunds,omitempty"`
}

// RefundDB is a refund made against a payment
type RefundDB struct {
	RefundTransactionID string `bson:"refund_transaction_id"`
	Amount              int64  `bson:"amount"`
	RefundedAt          string `bson:"refunded_at"`
}

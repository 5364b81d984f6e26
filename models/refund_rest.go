package models

// CreateRefundRequest is the body of a refund request. Amount is a decimal
// string in the payment's currency; leaving it out refunds the remaining balance.
type CreateRefundRequest struct {
	Amount string `json:"amount,omitempty" validate:"omitempty,numeric"`
}

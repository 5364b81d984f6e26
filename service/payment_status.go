package service

// PaymentStatus is the state of a stored payment record
type PaymentStatus int

const (
	// Pending payments are waiting for the user to approve them on LINE Pay
	Pending PaymentStatus = iota

	// Authorized payments were confirmed with capture disabled and await capture or void
	Authorized

	// Confirmed payments have been paid
	Confirmed

	// Cancelled payments were abandoned by the user
	Cancelled

	// Voided payments had their authorization released
	Voided

	// Refunded payments have been refunded in full
	Refunded

	// PartiallyRefunded payments have had part of their amount refunded
	PartiallyRefunded
)

var paymentStatuses = [...]string{
	"pending",
	"authorized",
	"confirmed",
	"cancelled",
	"voided",
	"refunded",
	"partially-refunded",
}

// String representation of `PaymentStatus`
func (p PaymentStatus) String() string {
	return paymentStatuses[p]
}

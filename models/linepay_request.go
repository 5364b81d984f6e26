package models

// RequestPaymentBody is the body posted to /v4/payments/request
type RequestPaymentBody struct {
	Amount       int64            `json:"amount"`
	Currency     string           `json:"currency"`
	OrderID      string           `json:"orderId"`
	Packages     []PackageBody    `json:"packages"`
	RedirectURLs RedirectURLsBody `json:"redirectUrls"`
	Options      *OptionsBody     `json:"options,omitempty"`
}

// PackageBody is a package as sent to LINE Pay
type PackageBody struct {
	ID       string        `json:"id"`
	Amount   int64         `json:"amount"`
	Products []ProductBody `json:"products"`
	Name     *string       `json:"name,omitempty"`
	UserFee  *int64        `json:"userFee,omitempty"`
}

// ProductBody is a product as sent to LINE Pay
type ProductBody struct {
	Name          string  `json:"name"     validate:"required"`
	Quantity      int64   `json:"quantity" validate:"gte=0"`
	Price         int64   `json:"price"    validate:"gte=0"`
	ID            *string `json:"id,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	OriginalPrice *int64  `json:"originalPrice,omitempty"`
}

// RedirectURLsBody holds the urls LINE Pay redirects the user to
type RedirectURLsBody struct {
	ConfirmURL     string `json:"confirmUrl"`
	CancelURL      string `json:"cancelUrl"`
	ConfirmURLType string `json:"confirmUrlType,omitempty"`
}

// OptionsBody holds the optional settings of a payment request
type OptionsBody struct {
	Payment *PaymentOptionsBody `json:"payment,omitempty"`
	Display *DisplayOptionsBody `json:"display,omitempty"`
	Extra   *ExtraOptionsBody   `json:"extra,omitempty"`
}

// IsEmpty reports whether no option group is set
func (o OptionsBody) IsEmpty() bool {
	return o.Payment == nil && o.Display == nil && o.Extra == nil
}

type PaymentOptionsBody struct {
	Capture *bool   `json:"capture,omitempty"`
	PayType *string `json:"payType,omitempty"`
}

type DisplayOptionsBody struct {
	Locale                 *string `json:"locale,omitempty"`
	CheckConfirmURLBrowser *bool   `json:"checkConfirmUrlBrowser,omitempty"`
}

type ExtraOptionsBody struct {
	BranchName *string `json:"branchName,omitempty"`
	BranchID   *string `json:"branchId,omitempty"`
}

// ConfirmRequest is the body posted to confirm or capture a payment
type ConfirmRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// RefundRequest is the body posted to refund a payment. A nil amount refunds
// whatever is left.
type RefundRequest struct {
	RefundAmount *int64 `json:"refundAmount,omitempty"`
}

// DetailsQuery selects the payments returned by the payment details api
type DetailsQuery struct {
	TransactionIDs []string
	OrderIDs       []string
	Fields         []string
}

package models

// IncomingPaymentRequest is the data received in the body of a create payment
// request. Amounts are decimal strings in the major unit of the currency.
type IncomingPaymentRequest struct {
	OrderID      string                  `json:"order_id"      validate:"required"`
	Amount       string                  `json:"amount"        validate:"required,numeric"`
	Currency     string                  `json:"currency"      validate:"required"`
	Packages     []IncomingPackage       `json:"packages"      validate:"required,min=1,dive"`
	RedirectURLs *IncomingRedirectURLs   `json:"redirect_urls,omitempty"`
	Options      *IncomingPaymentOptions `json:"options,omitempty"`
}

// IncomingPackage is a package of an incoming payment request
type IncomingPackage struct {
	ID       string            `json:"id"        validate:"required"`
	Amount   string            `json:"amount"    validate:"required,numeric"`
	Name     *string           `json:"name,omitempty"`
	UserFee  *string           `json:"user_fee,omitempty" validate:"omitempty,numeric"`
	Products []IncomingProduct `json:"products"  validate:"dive"`
}

// IncomingProduct is a product of an incoming payment request
type IncomingProduct struct {
	ID            *string `json:"id,omitempty"`
	Name          string  `json:"name"      validate:"required"`
	Quantity      int64   `json:"quantity"  validate:"gte=0"`
	Price         string  `json:"price"     validate:"required,numeric"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
	OriginalPrice *string `json:"original_price,omitempty" validate:"omitempty,numeric"`
}

// IncomingRedirectURLs overrides the service's configured redirect urls
type IncomingRedirectURLs struct {
	ConfirmURL     string `json:"confirm_url"      validate:"required,url"`
	CancelURL      string `json:"cancel_url"       validate:"required,url"`
	ConfirmURLType string `json:"confirm_url_type" validate:"omitempty,oneof=CLIENT SERVER"`
}

// IncomingPaymentOptions are the optional settings of an incoming payment request
type IncomingPaymentOptions struct {
	Capture                *bool   `json:"capture,omitempty"`
	PayType                *string `json:"pay_type,omitempty" validate:"omitempty,oneof=NORMAL PREAPPROVED"`
	Locale                 *string `json:"locale,omitempty"`
	CheckConfirmURLBrowser *bool   `json:"check_confirm_url_browser,omitempty"`
	BranchName             *string `json:"branch_name,omitempty"`
	BranchID               *string `json:"branch_id,omitempty"`
}

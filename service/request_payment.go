package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// PaymentRequester sends a validated payment request to LINE Pay
type PaymentRequester interface {
	RequestPayment(ctx context.Context, body *models.RequestPaymentBody) (*models.RequestPaymentResponse, error)
}

// RequestPayment accumulates the parts of a payment request. Setters never
// fail; everything is checked by Validate, which Build and Send call first.
type RequestPayment struct {
	sender       PaymentRequester
	amount       *int64
	currency     models.Currency
	orderID      string
	packages     []*models.Package
	redirectURLs *models.RedirectURLs
	options      *models.PaymentOptions
}

// NewRequestPayment returns an empty payment request which Send passes to sender
func NewRequestPayment(sender PaymentRequester) *RequestPayment {
	return &RequestPayment{sender: sender}
}

// SetAmount sets the total amount of the payment in minor units
func (r *RequestPayment) SetAmount(amount int64) *RequestPayment {
	r.amount = &amount
	return r
}

func (r *RequestPayment) SetCurrency(currency models.Currency) *RequestPayment {
	r.currency = currency
	return r
}

// SetOrderID sets the merchant's unique id for the order
func (r *RequestPayment) SetOrderID(orderID string) *RequestPayment {
	r.orderID = orderID
	return r
}

// AddPackage appends a package. Nil packages are ignored.
func (r *RequestPayment) AddPackage(pkg *models.Package) *RequestPayment {
	if pkg != nil {
		r.packages = append(r.packages, pkg)
	}
	return r
}

func (r *RequestPayment) SetRedirectURLs(urls models.RedirectURLs) *RequestPayment {
	r.redirectURLs = &urls
	return r
}

// SetOptions replaces any options set before
func (r *RequestPayment) SetOptions(options models.PaymentOptions) *RequestPayment {
	r.options = &options
	return r
}

// Validate returns a *models.ValidationError describing the first problem
// with the request, checking the amount, currency, order id, packages and
// redirect urls are set before checking the amounts add up. A missing
// redirect target is reported under its payload key, redirectUrls.
func (r *RequestPayment) Validate() error {
	if r.amount == nil || *r.amount < 0 {
		return models.NewMissingFieldError("amount", "Amount is required and must be non-negative")
	}

	if !r.currency.IsValid() {
		return models.NewMissingFieldError("currency", "Currency is required")
	}

	if r.orderID == "" {
		return models.NewMissingFieldError("orderId", "OrderId is required")
	}

	if len(r.packages) == 0 {
		return models.NewMissingFieldError("packages", "At least one package is required")
	}

	if r.redirectURLs == nil || r.redirectURLs.ConfirmURL == "" || r.redirectURLs.CancelURL == "" {
		return models.NewMissingFieldError("redirectUrls", "Redirect URLs are required")
	}

	// totals are summed as decimals so they cannot wrap around
	var packagesTotal decimal.Decimal
	for _, pkg := range r.packages {
		packagesTotal = packagesTotal.Add(decimal.NewFromInt(pkg.Amount()))
	}
	if !packagesTotal.Equal(decimal.NewFromInt(*r.amount)) {
		return models.NewAmountMismatchError("packages",
			fmt.Sprintf("Sum of package amounts (%s) does not match total amount (%d)", packagesTotal, *r.amount),
			*r.amount, models.ClampInt64(packagesTotal))
	}

	for i, pkg := range r.packages {
		productsTotal := pkg.ProductsTotal()
		if !productsTotal.Equal(decimal.NewFromInt(pkg.Amount())) {
			return models.NewAmountMismatchError(fmt.Sprintf("packages[%d].products", i),
				fmt.Sprintf("Sum of product amounts (%s) in package index %d does not match package amount (%d)", productsTotal, i, pkg.Amount()),
				pkg.Amount(), models.ClampInt64(productsTotal))
		}
	}

	return nil
}

// Build validates the request and returns the body to post to LINE Pay
func (r *RequestPayment) Build() (*models.RequestPaymentBody, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	packages := make([]models.PackageBody, 0, len(r.packages))
	for _, pkg := range r.packages {
		packages = append(packages, pkg.Body())
	}

	body := &models.RequestPaymentBody{
		Amount:       *r.amount,
		Currency:     r.currency.String(),
		OrderID:      r.orderID,
		Packages:     packages,
		RedirectURLs: r.redirectURLs.Body(),
	}

	if r.options != nil {
		options := r.options.Body()
		if !options.IsEmpty() {
			body.Options = &options
		}
	}

	return body, nil
}

// Send builds the request and passes it to LINE Pay. Nothing is sent when
// the request is invalid, and errors from the sender are returned unchanged.
func (r *RequestPayment) Send(ctx context.Context) (*models.RequestPaymentResponse, error) {
	body, err := r.Build()
	if err != nil {
		return nil, err
	}

	if r.sender == nil {
		return nil, errors.New("payment request has no sender")
	}

	return r.sender.RequestPayment(ctx, body)
}

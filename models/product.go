package models

import "github.com/shopspring/decimal"

// Product is a single line item inside a package. Products are immutable once
// created and always hold a non-empty name and non-negative quantity and price.
type Product struct {
	name          string
	quantity      int64
	price         int64
	id            *string
	imageURL      *string
	originalPrice *int64
}

// ProductOption sets an optional attribute of a Product
type ProductOption func(*Product)

// WithProductID sets the merchant's identifier for the product
func WithProductID(id string) ProductOption {
	return func(p *Product) {
		p.id = &id
	}
}

// WithImageURL sets the image shown for the product on the payment page
func WithImageURL(url string) ProductOption {
	return func(p *Product) {
		p.imageURL = &url
	}
}

// WithOriginalPrice sets the price before any discount
func WithOriginalPrice(price int64) ProductOption {
	return func(p *Product) {
		p.originalPrice = &price
	}
}

// NewProduct returns a validated Product
func NewProduct(name string, quantity, price int64, opts ...ProductOption) (*Product, error) {
	p := &Product{
		name:     name,
		quantity: quantity,
		price:    price,
	}
	for _, opt := range opts {
		opt(p)
	}

	body := p.Body()
	if err := ValidateStruct(&body); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Quantity() int64 {
	return p.quantity
}

func (p *Product) Price() int64 {
	return p.price
}

// ID returns the product id and whether one was set
func (p *Product) ID() (string, bool) {
	if p.id == nil {
		return "", false
	}
	return *p.id, true
}

// ImageURL returns the image url and whether one was set
func (p *Product) ImageURL() (string, bool) {
	if p.imageURL == nil {
		return "", false
	}
	return *p.imageURL, true
}

// OriginalPrice returns the original price and whether one was set
func (p *Product) OriginalPrice() (int64, bool) {
	if p.originalPrice == nil {
		return 0, false
	}
	return *p.originalPrice, true
}

// Total is quantity multiplied by price. It is exact, so a product whose
// total does not fit in an int64 never matches a package amount.
func (p *Product) Total() decimal.Decimal {
	return decimal.NewFromInt(p.quantity).Mul(decimal.NewFromInt(p.price))
}

// Body returns the wire representation of the product
func (p *Product) Body() ProductBody {
	return ProductBody{
		Name:          p.name,
		Quantity:      p.quantity,
		Price:         p.price,
		ID:            copyString(p.id),
		ImageURL:      copyString(p.imageURL),
		OriginalPrice: copyInt64(p.originalPrice),
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt64(i *int64) *int64 {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

package models

import "github.com/shopspring/decimal"

// Package groups products under a merchant supplied id and a declared amount.
// The declared amount is only checked against the products when the payment
// request is validated.
type Package struct {
	id       string
	amount   int64
	name     *string
	userFee  *int64
	products []*Product
}

// PackageOption sets an optional attribute of a Package
type PackageOption func(*Package)

// WithPackageName sets a display name for the package
func WithPackageName(name string) PackageOption {
	return func(p *Package) {
		p.name = &name
	}
}

// WithUserFee sets the fee charged to the user for the package
func WithUserFee(fee int64) PackageOption {
	return func(p *Package) {
		p.userFee = &fee
	}
}

// NewPackage returns an empty package
func NewPackage(id string, amount int64, opts ...PackageOption) *Package {
	p := &Package{
		id:       id,
		amount:   amount,
		products: []*Product{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddProduct appends product to the package and returns the package so calls
// can be chained. A nil product is ignored.
func (p *Package) AddProduct(product *Product) *Package {
	if product == nil {
		return p
	}
	p.products = append(p.products, product)
	return p
}

func (p *Package) ID() string {
	return p.id
}

func (p *Package) Amount() int64 {
	return p.amount
}

// Name returns the package name and whether one was set
func (p *Package) Name() (string, bool) {
	if p.name == nil {
		return "", false
	}
	return *p.name, true
}

// UserFee returns the user fee and whether one was set
func (p *Package) UserFee() (int64, bool) {
	if p.userFee == nil {
		return 0, false
	}
	return *p.userFee, true
}

// Products returns the products in insertion order. The returned slice is a
// copy, so appending to it does not change the package.
func (p *Package) Products() []*Product {
	products := make([]*Product, len(p.products))
	copy(products, p.products)
	return products
}

// ProductsTotal is the sum of quantity * price over every product
func (p *Package) ProductsTotal() decimal.Decimal {
	var total decimal.Decimal
	for _, product := range p.products {
		total = total.Add(product.Total())
	}
	return total
}

// Body returns the wire representation of the package
func (p *Package) Body() PackageBody {
	products := make([]ProductBody, 0, len(p.products))
	for _, product := range p.products {
		products = append(products, product.Body())
	}

	return PackageBody{
		ID:       p.id,
		Amount:   p.amount,
		Products: products,
		Name:     copyString(p.name),
		UserFee:  copyInt64(p.userFee),
	}
}

package models

import (
	"encoding/json"
	"fmt"
)

// Currency enumerates the currencies LINE Pay accepts. The zero value means
// no currency has been chosen.
type Currency int

const (
	TWD Currency = 1 + iota
	JPY
	THB
	USD
	EUR
	GBP
	AUD
	CAD
	CHF
	CNY
	HKD
	KRW
	SGD
	MYR
	PHP
	IDR
	VND
	INR
	NZD
)

var currencyCodes = [...]string{
	"TWD",
	"JPY",
	"THB",
	"USD",
	"EUR",
	"GBP",
	"AUD",
	"CAD",
	"CHF",
	"CNY",
	"HKD",
	"KRW",
	"SGD",
	"MYR",
	"PHP",
	"IDR",
	"VND",
	"INR",
	"NZD",
}

// number of digits after the decimal point in an amount of each currency
var currencyExponents = [...]int32{
	0, // LINE Pay settles TWD in whole dollars
	0,
	2,
	2,
	2,
	2,
	2,
	2,
	2,
	2,
	2,
	0,
	2,
	2,
	2,
	0,
	0,
	2,
	2,
}

// ParseCurrency returns the Currency for an ISO 4217 code
func ParseCurrency(code string) (Currency, error) {
	for i, c := range currencyCodes {
		if c == code {
			return Currency(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unsupported currency [%s]", code)
}

// IsValid reports whether c is one of the supported currencies
func (c Currency) IsValid() bool {
	return c >= TWD && c <= NZD
}

// String representation of `Currency`
func (c Currency) String() string {
	if !c.IsValid() {
		return ""
	}
	return currencyCodes[c-1]
}

// Exponent is the number of minor-unit digits used by the currency
func (c Currency) Exponent() int32 {
	if !c.IsValid() {
		return 0
	}
	return currencyExponents[c-1]
}

// MarshalJSON writes the currency as its ISO code
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON reads the currency from its ISO code
func (c *Currency) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	currency, err := ParseCurrency(code)
	if err != nil {
		return err
	}
	*c = currency
	return nil
}

// PayType is the kind of payment being requested
type PayType int

const (
	// Normal is a one off payment
	Normal PayType = 1 + iota

	// Preapproved registers the user for later automatic payments
	Preapproved
)

var payTypes = [...]string{
	"NORMAL",
	"PREAPPROVED",
}

// ParsePayType returns the PayType for its wire value
func ParsePayType(value string) (PayType, error) {
	for i, p := range payTypes {
		if p == value {
			return PayType(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unsupported pay type [%s]", value)
}

// String representation of `PayType`
func (p PayType) String() string {
	if p < Normal || p > Preapproved {
		return ""
	}
	return payTypes[p-1]
}

// ConfirmURLType says who LINE Pay redirects to once the user approves a payment
type ConfirmURLType int

const (
	// ConfirmURLClient redirects the user's browser to the confirm URL
	ConfirmURLClient ConfirmURLType = 1 + iota

	// ConfirmURLServer calls the confirm URL from LINE Pay's servers
	ConfirmURLServer
)

var confirmURLTypes = [...]string{
	"CLIENT",
	"SERVER",
}

// ParseConfirmURLType returns the ConfirmURLType for its wire value
func ParseConfirmURLType(value string) (ConfirmURLType, error) {
	for i, t := range confirmURLTypes {
		if t == value {
			return ConfirmURLType(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unsupported confirm url type [%s]", value)
}

// String representation of `ConfirmURLType`
func (t ConfirmURLType) String() string {
	if t < ConfirmURLClient || t > ConfirmURLServer {
		return ""
	}
	return confirmURLTypes[t-1]
}

package models

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ToMinorUnits converts a decimal amount in the major unit of currency, such
// as "12.50" USD, into the integer amount LINE Pay expects, such as 1250.
func ToMinorUnits(amount string, currency Currency) (int64, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("error parsing amount [%s]: [%w]", amount, err)
	}

	exponent := currency.Exponent()
	scaled := value.Shift(exponent)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("amount [%s] has more than %d decimal places for %s", amount, exponent, currency)
	}
	if scaled.Abs().Cmp(decimal.New(1, 18)) >= 0 {
		return 0, fmt.Errorf("amount [%s] is out of range", amount)
	}

	return scaled.IntPart(), nil
}

// FromMinorUnits formats an integer amount of currency as a decimal string in
// its major unit
func FromMinorUnits(amount int64, currency Currency) string {
	exponent := currency.Exponent()
	return decimal.New(amount, -exponent).StringFixed(exponent)
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// ClampInt64 returns the integer part of d, saturated at the int64 bounds
func ClampInt64(d decimal.Decimal) int64 {
	switch {
	case d.GreaterThan(maxInt64):
		return math.MaxInt64
	case d.LessThan(minInt64):
		return math.MinInt64
	default:
		return d.IntPart()
	}
}

package qty

import (
	"fmt"
)

// UnitPrice represents the price of one unit of measure in a currency.
// The zero value corresponds to "XXX 0.00".
// This type is designed to be safe for concurrent use by multiple goroutines.
type UnitPrice struct {
	price Money
}

// NewUnitPrice returns a unit price.
//
// NewUnitPrice returns an error if the price is negative.
func NewUnitPrice(price Money) (UnitPrice, error) {
	if price.Sign() < 0 {
		return UnitPrice{}, fmt.Errorf("unit price must not be negative")
	}
	return UnitPrice{price: price}, nil
}

// ParseUnitPrice converts currency and decimal strings to a unit price.
// See also [ParseMoney].
func ParseUnitPrice(curr, price string) (UnitPrice, error) {
	m, err := ParseMoney(curr, price)
	if err != nil {
		return UnitPrice{}, fmt.Errorf("price parsing: %w", err)
	}
	p, err := NewUnitPrice(m)
	if err != nil {
		return UnitPrice{}, fmt.Errorf("price construction: %w", err)
	}
	return p, nil
}

// MustParseUnitPrice is like [ParseUnitPrice] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding prices.
func MustParseUnitPrice(curr, price string) UnitPrice {
	p, err := ParseUnitPrice(curr, price)
	if err != nil {
		panic(fmt.Sprintf("ParseUnitPrice(%q, %q) failed: %v", curr, price, err))
	}
	return p
}

// Curr returns the currency of the price.
func (p UnitPrice) Curr() Currency {
	return p.price.Curr()
}

// Money returns the price of one unit.
func (p UnitPrice) Money() Money {
	return p.price
}

// Extend returns the line total for quantity q: the price multiplied by q,
// rounded half away from zero to minor units exactly once.
// See [LineTotalMinor] for details.
func (p UnitPrice) Extend(q Quantity) Money {
	return NewMoney(p.Curr(), extend(p.price.MinorUnits(), q))
}

// Total returns the sum of the line totals for the given quantities.
// Every line is rounded separately, as it would be printed on a receipt.
func (p UnitPrice) Total(qs ...Quantity) Money {
	sum := MinorUnits{}
	for _, q := range qs {
		sum = sum.Add(extend(p.price.MinorUnits(), q))
	}
	return NewMoney(p.Curr(), sum)
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the price, e.g. "USD 19.99".
func (p UnitPrice) String() string {
	return p.price.String()
}

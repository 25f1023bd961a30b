// Package shopspring converts quantities and minor units to and from
// [decimal.Decimal] values of the github.com/shopspring/decimal package.
package shopspring

import (
	"fmt"

	"github.com/govalues/qty"
	"github.com/shopspring/decimal"
)

// FromQuantity returns a decimal equal to q.
func FromQuantity(q qty.Quantity) decimal.Decimal {
	return decimal.NewFromBigInt(q.Coef(), -int32(q.Scale()))
}

// ToQuantity converts d to a quantity with the given scale.
//
// ToQuantity returns an error wrapping [qty.ErrPrecision] if d has more
// significant fractional digits than the scale allows.
func ToQuantity(d decimal.Decimal, scale qty.Scale) (qty.Quantity, error) {
	scale = qty.ClampScale(int(scale))
	shifted := d.Shift(int32(scale))
	if !shifted.IsInteger() {
		return qty.Quantity{}, fmt.Errorf("converting %v to scale %v: %w", d, scale, qty.ErrPrecision)
	}
	return qty.NewQuantity(shifted.BigInt(), scale), nil
}

// FromMinorUnits returns a decimal equal to m in major currency units.
func FromMinorUnits(m qty.MinorUnits) decimal.Decimal {
	return decimal.NewFromBigInt(m.Int(), -int32(qty.MoneyScale))
}

// ToMinorUnits converts d, given in major currency units, to minor units.
//
// ToMinorUnits returns an error wrapping [qty.ErrPrecision] if d has more
// significant fractional digits than [qty.MoneyScale].
func ToMinorUnits(d decimal.Decimal) (qty.MinorUnits, error) {
	shifted := d.Shift(int32(qty.MoneyScale))
	if !shifted.IsInteger() {
		return qty.MinorUnits{}, fmt.Errorf("converting %v to minor units: %w", d, qty.ErrPrecision)
	}
	return qty.NewMinorUnits(shifted.BigInt()), nil
}

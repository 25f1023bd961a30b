// Package cockroach converts quantities and minor units to and from
// [apd.Decimal] values of the github.com/cockroachdb/apd package, as used by
// fixed-point database columns.
package cockroach

import (
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/govalues/qty"
	"github.com/pkg/errors"
)

var errNotFinite = errors.New("not a finite decimal")

// FromQuantity returns a decimal equal to q with exponent -scale.
func FromQuantity(q qty.Quantity) *apd.Decimal {
	return fromScaled(q.Coef(), q.Scale())
}

// ToQuantity converts d to a quantity with the given scale.
//
// ToQuantity returns an error if d is infinite or NaN, or if d has more
// significant fractional digits than the scale allows
// (wrapping [qty.ErrPrecision]).
func ToQuantity(d *apd.Decimal, scale qty.Scale) (qty.Quantity, error) {
	scale = qty.ClampScale(int(scale))
	coef, err := toScaled(d, scale)
	if err != nil {
		return qty.Quantity{}, errors.Wrapf(err, "converting %s to scale %v", d, scale)
	}
	return qty.NewQuantity(coef, scale), nil
}

// FromMinorUnits returns a decimal equal to m in major currency units.
func FromMinorUnits(m qty.MinorUnits) *apd.Decimal {
	return fromScaled(m.Int(), qty.MoneyScale)
}

// ToMinorUnits converts d, given in major currency units, to minor units.
//
// ToMinorUnits returns an error if d is infinite or NaN, or if d has more
// significant fractional digits than [qty.MoneyScale]
// (wrapping [qty.ErrPrecision]).
func ToMinorUnits(d *apd.Decimal) (qty.MinorUnits, error) {
	coef, err := toScaled(d, qty.MoneyScale)
	if err != nil {
		return qty.MinorUnits{}, errors.Wrapf(err, "converting %s to minor units", d)
	}
	return qty.NewMinorUnits(coef), nil
}

func fromScaled(coef *big.Int, scale qty.Scale) *apd.Decimal {
	d := &apd.Decimal{Exponent: -int32(scale)}
	d.Coeff.Abs(coef)
	d.Negative = coef.Sign() < 0
	return d
}

// toScaled returns d * 10^scale, which must be an integer.
func toScaled(d *apd.Decimal, scale qty.Scale) (*big.Int, error) {
	if d.Form != apd.Finite {
		return nil, errNotFinite
	}
	coef := new(big.Int).Set(&d.Coeff)
	shift := int64(d.Exponent) + int64(scale)
	switch {
	case shift > 0:
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil))
	case shift < 0:
		rem := new(big.Int)
		coef.QuoRem(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(-shift), nil), rem)
		if rem.Sign() != 0 {
			return nil, qty.ErrPrecision
		}
	}
	if d.Negative {
		coef.Neg(coef)
	}
	return coef, nil
}

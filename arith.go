package qty

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// MinorUnits type represents an amount of money as an arbitrary-precision
// integer count of minor currency units (e.g. cents) at [MoneyScale].
// Its zero value is 0.
// MinorUnits is immutable and safe for concurrent use by multiple goroutines.
type MinorUnits struct {
	units *big.Int // nil means 0
}

// NewMinorUnits returns minor units equal to the given integer.
// The argument is copied.
func NewMinorUnits(units *big.Int) MinorUnits {
	if units == nil {
		return MinorUnits{}
	}
	return MinorUnits{units: new(big.Int).Set(units)}
}

// MinorUnitsFromInt64 returns minor units equal to n.
func MinorUnitsFromInt64(n int64) MinorUnits {
	return MinorUnits{units: big.NewInt(n)}
}

// ParseMinorUnits converts a decimal amount, such as "19.99", to minor units.
// A leading '-' is accepted for refunds.
//
// ParseMinorUnits returns a [*ValidationError] if the string is not a decimal
// or has more than [MoneyScale] fractional digits.
// Amounts are never rounded.
func ParseMinorUnits(amount string) (MinorUnits, error) {
	d, err := normalize(amount, MoneyScale, true, "Price")
	if err != nil {
		return MinorUnits{}, err
	}
	return MinorUnits{units: ToScaled(d, MoneyScale).coef}, nil
}

// MustParseMinorUnits is like [ParseMinorUnits] but panics if the string
// cannot be parsed.
func MustParseMinorUnits(amount string) MinorUnits {
	m, err := ParseMinorUnits(amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMinorUnits(%q) failed: %v", amount, err))
	}
	return m
}

// NewMinorUnitsFromDecimal converts a decimal to minor units.
//
// NewMinorUnitsFromDecimal returns an error if the decimal has more
// significant fractional digits than [MoneyScale].
func NewMinorUnitsFromDecimal(d decimal.Decimal) (MinorUnits, error) {
	d = d.Trim(int(MoneyScale))
	m, err := ParseMinorUnits(d.String())
	if err != nil {
		return MinorUnits{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return m, nil
}

// Int returns a copy of the number of minor units.
func (m MinorUnits) Int() *big.Int {
	if m.units == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(m.units)
}

// Int64 returns the number of minor units as an int64.
// If the result cannot be represented as an int64, then false is returned.
func (m MinorUnits) Int64() (units int64, ok bool) {
	u := m.Int()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// Decimal returns the canonical decimal string with exactly
// [MoneyScale] fractional digits.
func (m MinorUnits) Decimal() DecimalString {
	return FromScaled(m.units, MoneyScale)
}

// Decimal64 returns the amount as a [decimal.Decimal] with [MoneyScale].
//
// Decimal64 returns an error if the amount has more than [decimal.MaxPrec] digits.
func (m MinorUnits) Decimal64() (decimal.Decimal, error) {
	d, err := decimal.ParseExact(string(m.Decimal()), int(MoneyScale))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", m, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns
// the amount as a decimal string, e.g. "59.97".
func (m MinorUnits) String() string {
	return string(m.Decimal())
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m MinorUnits) Sign() int {
	if m.units == nil {
		return 0
	}
	return m.units.Sign()
}

// IsZero returns true if m = 0.
func (m MinorUnits) IsZero() bool {
	return m.Sign() == 0
}

// Neg returns minor units with the opposite sign.
func (m MinorUnits) Neg() MinorUnits {
	return MinorUnits{units: new(big.Int).Neg(m.Int())}
}

// Abs returns the absolute value.
func (m MinorUnits) Abs() MinorUnits {
	return MinorUnits{units: new(big.Int).Abs(m.Int())}
}

// Add returns the exact sum of m and n.
func (m MinorUnits) Add(n MinorUnits) MinorUnits {
	return MinorUnits{units: new(big.Int).Add(m.Int(), n.Int())}
}

// Sub returns the exact difference between m and n.
func (m MinorUnits) Sub(n MinorUnits) MinorUnits {
	return MinorUnits{units: new(big.Int).Sub(m.Int(), n.Int())}
}

// Cmp compares minor units and returns:
//
//	-1 if m < n
//	 0 if m = n
//	+1 if m > n
func (m MinorUnits) Cmp(n MinorUnits) int {
	return m.Int().Cmp(n.Int())
}

// Equal returns true if m = n.
func (m MinorUnits) Equal(n MinorUnits) bool {
	return m.Cmp(n) == 0
}

// LineTotalMinor computes the exact total of a sale line, unit price times
// quantity, in minor currency units.
// The price is converted to minor units at [MoneyScale] and the quantity to
// a scaled quantity at the given precision scale. Their integer product has
// an implied scale of MoneyScale + scale and is divided by 10^scale,
// rounding half away from zero.
// That division is the only rounding step, so the result is exact for every
// pair of inputs and independent of the order of the factors.
// Both strings may carry a leading '-' for refunds and stock deltas.
//
// LineTotalMinor returns a [*ValidationError] if the price is not a decimal
// with at most MoneyScale fractional digits or if the quantity is not a
// decimal with at most scale fractional digits.
// An invalid scale is clamped with [ClampScale].
func LineTotalMinor(unitPrice, quantity string, scale Scale) (MinorUnits, error) {
	price, err := ParseMinorUnits(unitPrice)
	if err != nil {
		return MinorUnits{}, err
	}
	q, err := ParseQuantity(quantity, scale)
	if err != nil {
		return MinorUnits{}, err
	}
	return extend(price, q), nil
}

// MustLineTotalMinor is like [LineTotalMinor] but panics if any of the
// strings is rejected.
func MustLineTotalMinor(unitPrice, quantity string, scale Scale) MinorUnits {
	m, err := LineTotalMinor(unitPrice, quantity, scale)
	if err != nil {
		panic(fmt.Sprintf("LineTotalMinor(%q, %q, %v) failed: %v", unitPrice, quantity, scale, err))
	}
	return m
}

// extend multiplies a price by a quantity and rescales the product
// to minor units.
func extend(price MinorUnits, q Quantity) MinorUnits {
	prod := new(big.Int).Mul(price.Int(), q.Coef())
	return MinorUnits{units: quoRoundHalfUp(prod, q.Scale())}
}

// quoRoundHalfUp returns x / 10^scale rounded half away from zero.
// x is overwritten.
func quoRoundHalfUp(x *big.Int, scale Scale) *big.Int {
	if scale == 0 {
		return x
	}
	neg := x.Sign() < 0
	den := pow10[scale]
	rem := new(big.Int)
	x.QuoRem(x, den, rem)
	rem.Abs(rem)
	rem.Lsh(rem, 1)
	if rem.Cmp(den) >= 0 {
		if neg {
			x.Sub(x, bigOne)
		} else {
			x.Add(x, bigOne)
		}
	}
	return x
}

var bigOne = big.NewInt(1)

package qty

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// Quantity type represents a scaled quantity: an arbitrary-precision
// integer equal to value * 10^scale, together with its scale.
// Equality and ordering are integer comparisons, never floating-point ones.
// Its zero value corresponds to 0 with a scale of 0.
// Quantity is immutable and safe for concurrent use by multiple goroutines.
type Quantity struct {
	coef  *big.Int // scaled value, nil means 0
	scale Scale
}

// newQuantityUnsafe takes ownership of coef.
func newQuantityUnsafe(coef *big.Int, scale Scale) Quantity {
	return Quantity{coef: coef, scale: scale}
}

// NewQuantity returns a quantity with the given scaled value,
// i.e. equal to coef / 10^scale.
// The argument is copied.
//
// NewQuantity panics if the scale is not within [MinScale, MaxScale].
func NewQuantity(coef *big.Int, scale Scale) Quantity {
	scale.mustBeValid()
	return newQuantityUnsafe(new(big.Int).Set(coef), scale)
}

// ToScaled converts a decimal string to a scaled quantity.
// The string is split on '.', the fractional part is zero-padded or
// truncated to scale digits, the integer and fractional digits are joined
// and parsed as an arbitrary-precision integer, and the sign is applied.
// A trailing point is tolerated.
//
// ToScaled does not validate its input: callers must check the string with
// [IsValidDecimal] or produce it with [Normalize] first.
// ToScaled panics if the string does not match -?\d+(\.\d*)? or the scale
// is not within [MinScale, MaxScale].
// Use [ParseQuantity] to convert untrusted text.
func ToScaled(d DecimalString, scale Scale) Quantity {
	scale.mustBeValid()
	s := string(d)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intpart, frac, _ := strings.Cut(s, ".")
	if intpart == "" || !isDigits(intpart) || !isDigits(frac) {
		panic(fmt.Sprintf("ToScaled(%q, %v): not a decimal string", d, scale))
	}
	if len(frac) > int(scale) {
		frac = frac[:scale]
	}
	digs := make([]byte, 0, len(intpart)+int(scale))
	digs = append(digs, intpart...)
	digs = append(digs, frac...)
	for i := len(frac); i < int(scale); i++ {
		digs = append(digs, '0')
	}
	coef, ok := new(big.Int).SetString(string(digs), 10)
	if !ok {
		panic(fmt.Sprintf("ToScaled(%q, %v): parsing digits %q", d, scale, digs))
	}
	if neg {
		coef.Neg(coef)
	}
	return newQuantityUnsafe(coef, scale)
}

// FromScaled converts a scaled value back to a decimal string.
// The point is placed scale digits from the right, the integer part is at
// least "0", and the sign is reattached.
// The result always has exactly scale fractional digits.
//
// FromScaled panics if the scale is not within [MinScale, MaxScale].
func FromScaled(v *big.Int, scale Scale) DecimalString {
	scale.mustBeValid()
	if v == nil {
		return canonical(false, "0", "", scale)
	}
	digs := new(big.Int).Abs(v).String()
	neg := v.Sign() < 0
	if scale == 0 {
		return canonical(neg, digs, "", scale)
	}
	if len(digs) <= int(scale) {
		digs = strings.Repeat("0", int(scale)-len(digs)+1) + digs
	}
	pos := len(digs) - int(scale)
	return canonical(neg, digs[:pos], digs[pos:], scale)
}

// ParseQuantity validates a signed decimal string with [NormalizeSigned]
// and converts it to a scaled quantity.
// See [Normalize] for the list of errors.
func ParseQuantity(raw string, scale Scale) (Quantity, error) {
	d, err := NormalizeSigned(raw, scale)
	if err != nil {
		return Quantity{}, err
	}
	return ToScaled(d, ClampScale(int(scale))), nil
}

// MustParseQuantity is like [ParseQuantity] but panics if the string is rejected.
// It simplifies safe initialization of global variables holding quantities.
func MustParseQuantity(raw string, scale Scale) Quantity {
	q, err := ParseQuantity(raw, scale)
	if err != nil {
		panic(fmt.Sprintf("ParseQuantity(%q, %v) failed: %v", raw, scale, err))
	}
	return q
}

// NewQuantityFromDecimal converts a decimal to a quantity with the given scale.
// Trailing zeros beyond the scale are removed.
//
// NewQuantityFromDecimal returns an error if the decimal has more
// significant fractional digits than the scale allows.
func NewQuantityFromDecimal(d decimal.Decimal, scale Scale) (Quantity, error) {
	scale = ClampScale(int(scale))
	d = d.Trim(int(scale))
	q, err := ParseQuantity(d.String(), scale)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return q, nil
}

// Decimal64 returns the quantity as a [decimal.Decimal] with the same scale.
//
// Decimal64 returns an error if the quantity has more than [decimal.MaxPrec]
// significant digits.
func (q Quantity) Decimal64() (decimal.Decimal, error) {
	d, err := decimal.ParseExact(string(q.Decimal()), int(q.Scale()))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", q, err)
	}
	return d, nil
}

// Scale returns the number of digits after the decimal point.
func (q Quantity) Scale() Scale {
	return q.scale
}

// Coef returns a copy of the scaled value, i.e. q * 10^scale.
func (q Quantity) Coef() *big.Int {
	if q.coef == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(q.coef)
}

// Decimal returns the canonical decimal string with exactly
// scale fractional digits.
func (q Quantity) Decimal() DecimalString {
	return FromScaled(q.coef, q.scale)
}

// String implements the [fmt.Stringer] interface and returns
// the canonical decimal string.
func (q Quantity) String() string {
	return string(q.Decimal())
}

// Display returns the quantity formatted for display with
// [FormatQtyDisplay].
func (q Quantity) Display(maxFracDigits int) string {
	return FormatQtyDisplay(q.String(), maxFracDigits)
}

// Sign returns:
//
//	-1 if q < 0
//	 0 if q = 0
//	+1 if q > 0
func (q Quantity) Sign() int {
	if q.coef == nil {
		return 0
	}
	return q.coef.Sign()
}

// IsZero returns true if q = 0.
func (q Quantity) IsZero() bool {
	return q.Sign() == 0
}

// IsPos returns true if q > 0.
func (q Quantity) IsPos() bool {
	return q.Sign() > 0
}

// IsNeg returns true if q < 0.
func (q Quantity) IsNeg() bool {
	return q.Sign() < 0
}

// Neg returns a quantity with the opposite sign.
func (q Quantity) Neg() Quantity {
	return newQuantityUnsafe(new(big.Int).Neg(q.Coef()), q.scale)
}

// Abs returns the absolute value of the quantity.
func (q Quantity) Abs() Quantity {
	return newQuantityUnsafe(new(big.Int).Abs(q.Coef()), q.scale)
}

// Add returns the exact sum of quantities q and r.
//
// Add returns an error if the quantities have different scales.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if q.scale != r.scale {
		return Quantity{}, fmt.Errorf("computing [%v + %v]: %w", q, r, errScaleMismatch)
	}
	return newQuantityUnsafe(new(big.Int).Add(q.Coef(), r.Coef()), q.scale), nil
}

// Sub returns the exact difference between quantities q and r.
//
// Sub returns an error if the quantities have different scales.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if q.scale != r.scale {
		return Quantity{}, fmt.Errorf("computing [%v - %v]: %w", q, r, errScaleMismatch)
	}
	return newQuantityUnsafe(new(big.Int).Sub(q.Coef(), r.Coef()), q.scale), nil
}

// Rescale returns a quantity zero-padded to the given scale.
//
// Rescale returns an error if the scale is not valid or if reducing
// the scale would drop non-zero digits.
func (q Quantity) Rescale(scale Scale) (Quantity, error) {
	if !scale.Valid() {
		return Quantity{}, fmt.Errorf("rescaling %v: scale %v out of range", q, scale)
	}
	coef := q.Coef()
	switch {
	case scale > q.scale:
		coef.Mul(coef, pow10[scale-q.scale])
	case scale < q.scale:
		r := new(big.Int)
		coef.QuoRem(coef, pow10[q.scale-scale], r)
		if r.Sign() != 0 {
			return Quantity{}, fmt.Errorf("rescaling %v to %v: %w", q, scale, ErrPrecision)
		}
	}
	return newQuantityUnsafe(coef, scale), nil
}

// Cmp compares quantities exactly and returns:
//
//	-1 if q < r
//	 0 if q = r
//	+1 if q > r
//
// Quantities with different scales are compared after padding the one
// with the smaller scale.
func (q Quantity) Cmp(r Quantity) int {
	a, b := q.Coef(), r.Coef()
	switch {
	case q.scale < r.scale:
		a.Mul(a, pow10[r.scale-q.scale])
	case q.scale > r.scale:
		b.Mul(b, pow10[q.scale-r.scale])
	}
	return a.Cmp(b)
}

// Equal returns true if quantities have the same value and scale.
func (q Quantity) Equal(r Quantity) bool {
	return q.scale == r.scale && q.Cmp(r) == 0
}

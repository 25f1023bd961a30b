package qty

import (
	"math/big"
	"strconv"
	"strings"
)

// Scale type represents the number of digits after the decimal point that
// a unit of measure supports.
// A valid scale is always within the range [MinScale, MaxScale].
type Scale int

const (
	MinScale   Scale = 0 // minimum supported precision scale
	MaxScale   Scale = 5 // maximum supported precision scale
	MoneyScale Scale = 2 // scale of minor currency units
)

// pow10 holds powers of ten for every supported scale and for the sum
// of the money scale and any supported scale.
var pow10 = func() [MaxScale + MoneyScale + 1]*big.Int {
	var p [MaxScale + MoneyScale + 1]*big.Int
	for i := range p {
		p[i] = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(i)), nil)
	}
	return p
}()

// ClampScale returns n clamped to the range [MinScale, MaxScale].
// ClampScale never fails, so it can be applied wherever a scale crosses
// a trust boundary, such as route parameters or stored unit records.
func ClampScale(n int) Scale {
	switch {
	case n < int(MinScale):
		return MinScale
	case n > int(MaxScale):
		return MaxScale
	}
	return Scale(n)
}

// ParseScale coerces a string to a scale.
// Surrounding whitespace is ignored, a fractional part is truncated toward
// zero, and anything that is not a number yields [MinScale].
// The result is clamped with [ClampScale].
func ParseScale(s string) Scale {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if !isDigits(s[i+1:]) {
			return MinScale
		}
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "+")
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" || !isDigits(s) {
		return MinScale
	}
	if neg {
		return MinScale
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Only digits were found, so the value is out of int range.
		return MaxScale
	}
	return ClampScale(n)
}

// ScaleOf coerces an arbitrary value to a scale.
// Integer kinds are clamped, strings are parsed with [ParseScale],
// and all other values yield [MinScale].
func ScaleOf(v any) Scale {
	switch v := v.(type) {
	case Scale:
		return ClampScale(int(v))
	case int:
		return ClampScale(v)
	case int8:
		return ClampScale(int(v))
	case int16:
		return ClampScale(int(v))
	case int32:
		return ClampScale(int(v))
	case int64:
		return clampInt64(v)
	case uint:
		return clampUint64(uint64(v))
	case uint8:
		return ClampScale(int(v))
	case uint16:
		return ClampScale(int(v))
	case uint32:
		return clampUint64(uint64(v))
	case uint64:
		return clampUint64(v)
	case string:
		return ParseScale(v)
	case []byte:
		return ParseScale(string(v))
	case *Scale:
		if v == nil {
			return MinScale
		}
		return ClampScale(int(*v))
	}
	return MinScale
}

func clampInt64(n int64) Scale {
	switch {
	case n < int64(MinScale):
		return MinScale
	case n > int64(MaxScale):
		return MaxScale
	}
	return Scale(n)
}

func clampUint64(n uint64) Scale {
	if n > uint64(MaxScale) {
		return MaxScale
	}
	return Scale(n)
}

// Valid returns true if the scale is within the range [MinScale, MaxScale].
func (s Scale) Valid() bool {
	return MinScale <= s && s <= MaxScale
}

// Pow10 returns 10^s as a new big integer.
//
// Pow10 panics if the scale is not valid.
// Use [ClampScale] to obtain a valid scale.
func (s Scale) Pow10() *big.Int {
	s.mustBeValid()
	return new(big.Int).Set(pow10[s])
}

func (s Scale) mustBeValid() {
	if !s.Valid() {
		panic("qty: scale " + strconv.Itoa(int(s)) + " out of range")
	}
}

// String implements the [fmt.Stringer] interface.
func (s Scale) String() string {
	return strconv.Itoa(int(s))
}

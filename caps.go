package qty

import "strings"

// DefaultMaxIntegerDigits is the default limit on the number of
// integer digits of a quantity.
const DefaultMaxIntegerDigits = 12

// Caps holds the hard limits applied to quantity input while typing.
type Caps struct {
	// MaxIntegerDigits limits the number of digits before the point.
	// Zero or a negative value means DefaultMaxIntegerDigits.
	MaxIntegerDigits int
	// HardCapLength limits the total number of characters, including
	// the sign and the point.
	// Zero or a negative value disables the limit.
	HardCapLength int
}

// DefaultCaps returns caps with [DefaultMaxIntegerDigits] and no length limit.
func DefaultCaps() Caps {
	return Caps{MaxIntegerDigits: DefaultMaxIntegerDigits}
}

// EnforceCaps is like [Caps.Enforce] with [DefaultMaxIntegerDigits]
// and the given length limit.
func EnforceCaps(sanitized string, scale Scale, hardCapLength int) string {
	return Caps{MaxIntegerDigits: DefaultMaxIntegerDigits, HardCapLength: hardCapLength}.Enforce(sanitized, scale)
}

// Enforce truncates a sanitized draft (see [SanitizeDraft]) to the caps.
// The limits are applied in a fixed order:
//  1. the integer part is cut to MaxIntegerDigits digits;
//  2. the fractional part is cut to scale digits, and the point is removed
//     when the scale is 0;
//  3. the whole string is cut to HardCapLength characters.
//
// A point left dangling by step 3 is removed as well, so the length cap
// never produces a trailing point.
// A trailing point that was already typed survives steps 1 and 2.
// Excess characters are silently dropped.
func (c Caps) Enforce(sanitized string, scale Scale) string {
	scale = ClampScale(int(scale))
	maxint := c.MaxIntegerDigits
	if maxint <= 0 {
		maxint = DefaultMaxIntegerDigits
	}

	sign := ""
	s := sanitized
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intpart, frac, point := strings.Cut(s, ".")

	// Integer digits
	if len(intpart) > maxint {
		intpart = intpart[:maxint]
	}

	// Fractional digits
	if scale == 0 {
		point, frac = false, ""
	} else if len(frac) > int(scale) {
		frac = frac[:scale]
	}

	var b strings.Builder
	b.Grow(len(sign) + len(intpart) + 1 + len(frac))
	b.WriteString(sign)
	b.WriteString(intpart)
	if point {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	res := b.String()

	// Length
	if c.HardCapLength > 0 && len(res) > c.HardCapLength {
		res = strings.TrimSuffix(res[:c.HardCapLength], ".")
	}
	return res
}

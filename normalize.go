package qty

import (
	"fmt"
	"strings"
)

// DecimalString type represents an exact decimal value in canonical form:
// an optional '-', an integer part without leading zeros, and, unless the
// scale is 0, a point followed by exactly scale fractional digits.
// A DecimalString is never produced from a binary floating-point value.
type DecimalString string

// String implements the [fmt.Stringer] interface.
func (d DecimalString) String() string {
	return string(d)
}

// Normalize validates an unsigned decimal string committed by the user
// and converts it to canonical form.
// Surrounding whitespace is ignored.
// The integer part loses its leading zeros (but is never empty) and the
// fractional part is zero-padded to exactly scale digits, or omitted when
// the scale is 0.
//
// Normalize returns a [*ValidationError] if:
//   - the string is empty ([ErrEmpty]);
//   - the string uses exponent notation ([ErrExponent]);
//   - the string contains thousands separators ([ErrGrouping]);
//   - the string ends with a decimal point ([ErrTrailingPoint]);
//   - the string is not a decimal number ([ErrSyntax]);
//   - the string has more than scale fractional digits ([ErrPrecision]).
//     Extra digits are never rounded away.
//
// An invalid scale is clamped with [ClampScale].
func Normalize(raw string, scale Scale) (DecimalString, error) {
	return normalize(raw, ClampScale(int(scale)), false, "Quantity")
}

// MustNormalize is like [Normalize] but panics if the string is rejected.
// It simplifies safe initialization of global variables holding decimals.
func MustNormalize(raw string, scale Scale) DecimalString {
	d, err := Normalize(raw, scale)
	if err != nil {
		panic(fmt.Sprintf("Normalize(%q, %v) failed: %v", raw, scale, err))
	}
	return d
}

// NormalizeSigned is like [Normalize] but also accepts a single leading '-',
// as used by inventory deltas.
// Negative zero is normalized to zero.
func NormalizeSigned(raw string, scale Scale) (DecimalString, error) {
	return normalize(raw, ClampScale(int(scale)), true, "Quantity")
}

// normalize validates raw and returns its canonical form.
// The noun names the value in user-facing messages.
func normalize(raw string, scale Scale, signed bool, noun string) (DecimalString, error) {
	s := strings.TrimSpace(raw)
	neg, intpart, frac, err := parseDecimal(raw, s, signed, noun)
	if err != nil {
		return "", err
	}
	if len(frac) > int(scale) {
		return "", newValidationError(ErrPrecision, raw, precisionMessage(noun, scale))
	}
	return canonical(neg, intpart, frac, scale), nil
}

// parseDecimal splits s into sign, integer and fractional digits.
// When s is rejected, the error explains why in terms of the original text raw.
func parseDecimal(raw, s string, signed bool, noun string) (neg bool, intpart, frac string, err error) {
	if s == "" {
		return false, "", "", newValidationError(ErrEmpty, raw, noun+" is required")
	}
	neg, intpart, frac, ok := splitDecimal(s, signed)
	if ok {
		return neg, intpart, frac, nil
	}
	body := s
	if signed && strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	switch {
	case isExponent(body):
		err = newValidationError(ErrExponent, raw, "Scientific notation is not allowed")
	case isGrouped(body):
		err = newValidationError(ErrGrouping, raw, "Thousands separators are not allowed")
	case len(body) > 1 && body[len(body)-1] == '.' && isDigits(body[:len(body)-1]):
		err = newValidationError(ErrTrailingPoint, raw, noun+" cannot end with a decimal point")
	default:
		err = newValidationError(ErrSyntax, raw, "Invalid "+strings.ToLower(noun)+" format")
	}
	return false, "", "", err
}

// splitDecimal matches s against the grammar -?\d+(\.\d+)? and returns
// its parts.
// The sign is only accepted when signed is true.
func splitDecimal(s string, signed bool) (neg bool, intpart, frac string, ok bool) {
	if signed && strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intpart = s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intpart, frac = s[:i], s[i+1:]
		if frac == "" || !isDigits(frac) {
			return false, "", "", false
		}
	}
	if intpart == "" || !isDigits(intpart) {
		return false, "", "", false
	}
	return neg, intpart, frac, true
}

// canonical assembles a canonical decimal string.
// The fractional part must not be longer than the scale.
func canonical(neg bool, intpart, frac string, scale Scale) DecimalString {
	intpart = strings.TrimLeft(intpart, "0")
	if intpart == "" {
		intpart = "0"
	}
	var b strings.Builder
	b.Grow(len(intpart) + int(scale) + 2)
	if neg && (intpart != "0" || strings.Trim(frac, "0") != "") {
		b.WriteByte('-')
	}
	b.WriteString(intpart)
	if scale > 0 {
		b.WriteByte('.')
		b.WriteString(frac)
		for i := len(frac); i < int(scale); i++ {
			b.WriteByte('0')
		}
	}
	return DecimalString(b.String())
}

func precisionMessage(noun string, scale Scale) string {
	switch scale {
	case 0:
		return noun + " must be a whole number"
	case 1:
		return noun + " allows at most 1 decimal place"
	}
	return fmt.Sprintf("%s allows at most %d decimal places", noun, scale)
}

// isExponent returns true if s looks like a number in exponent notation,
// such as "1e3", "1.5E-2" or "2e+10".
func isExponent(s string) bool {
	i := strings.IndexAny(s, "eE")
	if i <= 0 {
		return false
	}
	mant, exp := s[:i], s[i+1:]
	if strings.Count(mant, ".") > 1 || strings.Trim(mant, ".") == "" || !isDigits(strings.Replace(mant, ".", "", 1)) {
		return false
	}
	exp = strings.TrimLeft(exp, "+-")
	return exp != "" && isDigits(exp)
}

// isGrouped returns true if s is a number with thousands separators,
// such as "1,200", "1 200", "1'200" or "1_200".
func isGrouped(s string) bool {
	if !strings.ContainsAny(s, ",_' ") {
		return false
	}
	s = strings.NewReplacer(",", "", "_", "", "'", "", " ", "").Replace(s)
	_, _, _, ok := splitDecimal(s, false)
	return ok
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isDigits returns true if every byte of s is an ASCII digit.
// It returns true for the empty string.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

package qty

import (
	"strings"
	"unicode"
)

// compactDigits is the number of integer digits from which
// FormatQtyDisplay switches to compact notation.
const compactDigits = 5

var compactSuffixes = [...]string{"", "k", "M", "B", "T"}

// FormatQtyDisplay renders a decimal for display.
// The input may carry a sign, grouping commas in the integer part and any
// number of fractional digits; text that is not a decimal is returned
// unchanged.
//
// When the integer part has fewer than 5 digits, the fractional part is
// rounded half up to maxFracDigits digits with the carry propagated into the
// integer part, trailing zeros are removed and the integer digits are
// grouped by thousands:
//
//	FormatQtyDisplay("1234.5", 2)  // "1,234.5"
//	FormatQtyDisplay("9.995", 2)   // "10"
//
// Otherwise the number is abbreviated with one of the suffixes k, M, B or T
// and at most one fractional digit. That digit is rounded against the digit
// that follows it, and the carry may move the number to the next suffix:
//
//	FormatQtyDisplay("12345", 2)   // "12.3k"
//	FormatQtyDisplay("999950", 2)  // "1M"
//
// The sign is kept unless the rendered magnitude is zero.
// The result must never be parsed back for arithmetic.
func FormatQtyDisplay(raw string, maxFracDigits int) string {
	s := strings.TrimSpace(raw)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	intpart, frac, point := strings.Cut(s, ".")
	intpart = strings.ReplaceAll(intpart, ",", "")
	if intpart == "" && point && frac != "" {
		intpart = "0"
	}
	if intpart == "" || !isDigits(intpart) || !isDigits(frac) {
		return raw
	}
	intpart = strings.TrimLeft(intpart, "0")
	if intpart == "" {
		intpart = "0"
	}
	maxFracDigits = max(maxFracDigits, 0)

	var res string
	if len(intpart) < compactDigits {
		intpart, frac = roundDigits(intpart, frac, maxFracDigits)
	}
	if len(intpart) < compactDigits {
		res = formatPlain(intpart, frac)
	} else {
		res = formatCompact(intpart)
	}
	if neg && strings.ContainsAny(res, "123456789") {
		res = "-" + res
	}
	return res
}

// roundDigits rounds the fractional digits half up to n digits and
// propagates the carry into the integer digits.
func roundDigits(intpart, frac string, n int) (string, string) {
	if len(frac) <= n {
		return intpart, frac
	}
	roundUp := frac[n] >= '5'
	digs := make([]byte, 0, len(intpart)+n+1)
	digs = append(digs, intpart...)
	digs = append(digs, frac[:n]...)
	if roundUp && incDigits(digs) {
		digs = append([]byte{'1'}, digs...)
	}
	pos := len(digs) - n
	return string(digs[:pos]), string(digs[pos:])
}

// formatPlain groups the integer digits and appends the fractional
// digits without trailing zeros.
func formatPlain(intpart, frac string) string {
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return groupDigits(intpart)
	}
	return groupDigits(intpart) + "." + frac
}

// formatCompact abbreviates an integer with at least compactDigits digits.
// The compact digit is rounded against the single digit that follows it.
func formatCompact(intpart string) string {
	tier := min((len(intpart)-1)/3, len(compactSuffixes)-1)
	head := len(intpart) - 3*tier
	mant := []byte(intpart[:head])
	c := intpart[head] - '0'
	if intpart[head+1] >= '5' {
		c++
	}
	if c == 10 {
		c = 0
		if incDigits(mant) {
			if head == 3 && tier < len(compactSuffixes)-1 {
				// 999.95k becomes 1M, not 1000k
				tier++
				mant = mant[:1]
				mant[0] = '1'
			} else {
				mant = append([]byte{'1'}, mant...)
			}
		}
	}
	var b strings.Builder
	b.WriteString(groupDigits(string(mant)))
	if c != 0 {
		b.WriteByte('.')
		b.WriteByte('0' + c)
	}
	b.WriteString(compactSuffixes[tier])
	return b.String()
}

// incDigits adds one to a big-endian slice of ASCII digits in place
// and returns true if the carry overflows the most significant digit.
func incDigits(digs []byte) bool {
	for i := len(digs) - 1; i >= 0; i-- {
		if digs[i] < '9' {
			digs[i]++
			return false
		}
		digs[i] = '0'
	}
	return true
}

// groupDigits inserts a comma between every group of three digits
// counted from the right.
func groupDigits(digs string) string {
	if len(digs) <= 3 {
		return digs
	}
	var b strings.Builder
	b.Grow(len(digs) + (len(digs)-1)/3)
	head := len(digs) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digs[:head])
	for i := head; i < len(digs); i += 3 {
		b.WriteByte(',')
		b.WriteString(digs[i : i+3])
	}
	return b.String()
}

// FormatMoneyCompact renders an amount with format and, when the absolute
// value is at least 10,000 major units, replaces the numeric part of the
// result (from its first digit to its last digit) with the compact form
// produced by [FormatQtyDisplay].
// The currency code or symbol, the position of the sign and any other
// decoration added by format are kept.
// If format is nil, [Money.String] is used.
//
//	FormatMoneyCompact(m, nil)  // "USD 1.2M" for USD 1234567.89
func FormatMoneyCompact(m Money, format func(Money) string) string {
	if format == nil {
		format = Money.String
	}
	full := format(m)
	mag := string(m.MinorUnits().Abs().Decimal())
	intpart, _, _ := strings.Cut(mag, ".")
	if len(strings.TrimLeft(intpart, "0")) < compactDigits {
		return full
	}
	i := strings.IndexFunc(full, unicode.IsDigit)
	if i < 0 {
		return full
	}
	j := strings.LastIndexFunc(full, unicode.IsDigit)
	return full[:i] + FormatQtyDisplay(mag, int(MoneyScale)) + full[j+1:]
}

package qty

import (
	"fmt"
	"math/big"
	"strings"
)

// Money type represents a monetary amount as a whole number of minor units
// of its currency.
// Its zero value corresponds to "XXX 0.00", where [XXX] indicates an unknown
// currency.
// Money is immutable and safe for concurrent use by multiple goroutines.
type Money struct {
	curr  Currency
	units MinorUnits
}

// NewMoney returns an amount in the given currency.
func NewMoney(curr Currency, units MinorUnits) Money {
	return Money{curr: curr, units: units}
}

// ParseMoney converts currency and decimal strings to an amount.
// See also [ParseCurr] and [ParseMinorUnits].
//
// ParseMoney returns an error if the currency code is not valid or the
// amount has more than [MoneyScale] fractional digits.
func ParseMoney(curr, amount string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	u, err := ParseMinorUnits(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewMoney(c, u), nil
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// MinorUnits returns the amount in minor units of its currency.
func (m Money) MinorUnits() MinorUnits {
	return m.units
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.units.Sign()
}

// IsZero returns true if m = 0.
func (m Money) IsZero() bool {
	return m.units.IsZero()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return NewMoney(m.curr, m.units.Abs())
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return NewMoney(m.curr, m.units.Neg())
}

// SameCurr returns true if amounts are denominated in the same currency.
func (m Money) SameCurr(n Money) bool {
	return m.curr == n.curr
}

// Add returns the exact sum of amounts m and n.
//
// Add returns an error if amounts are denominated in different currencies.
func (m Money) Add(n Money) (Money, error) {
	if !m.SameCurr(n) {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, n, errCurrMismatch)
	}
	return NewMoney(m.curr, m.units.Add(n.units)), nil
}

// Sub returns the exact difference between amounts m and n.
//
// Sub returns an error if amounts are denominated in different currencies.
func (m Money) Sub(n Money) (Money, error) {
	if !m.SameCurr(n) {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, n, errCurrMismatch)
	}
	return NewMoney(m.curr, m.units.Sub(n.units)), nil
}

// Cmp compares amounts and returns:
//
//	-1 if m < n
//	 0 if m = n
//	+1 if m > n
//
// Cmp returns an error if amounts are denominated in different currencies.
func (m Money) Cmp(n Money) (int, error) {
	if !m.SameCurr(n) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, n, errCurrMismatch)
	}
	return m.units.Cmp(n.units), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remaining minor units are distributed among the first parts
// of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", m, parts)
	}
	quo, rem := new(big.Int).QuoRem(m.units.Int(), big.NewInt(int64(parts)), new(big.Int))
	ulp := big.NewInt(int64(rem.Sign()))
	res := make([]Money, parts)
	for i := range res {
		u := new(big.Int).Set(quo)
		// Remainder distribution
		if rem.Sign() != 0 {
			u.Add(u, ulp)
			rem.Sub(rem, ulp)
		}
		res[i] = Money{curr: m.curr, units: MinorUnits{units: u}}
	}
	return res, nil
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of an amount, e.g. "USD -5.67".
func (m Money) String() string {
	return m.curr.Code() + " " + m.units.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example       | Description                |
//	| ------ | ------------- | -------------------------- |
//	| %s, %v | USD 1234.50   | Currency and amount        |
//	| %q     | "USD 1234.50" | Quoted currency and amount |
//	| %f     | 1234.50       | Amount                     |
//	| %d     | 123450        | Amount in minor units      |
//	| %c     | USD           | Currency                   |
//
// The '+' flag forces a sign and the '#' flag groups integer digits by
// thousands ("USD 1,234.50").
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	// Amount
	var amount string
	switch verb {
	case 'd', 'D':
		amount = m.units.Int().String()
	case 'c', 'C':
		// skip
	default:
		amount = m.units.String()
	}
	if amount != "" {
		neg := strings.HasPrefix(amount, "-")
		amount = strings.TrimPrefix(amount, "-")
		if state.Flag('#') {
			intpart, frac, ok := strings.Cut(amount, ".")
			amount = groupDigits(intpart)
			if ok {
				amount += "." + frac
			}
		}
		switch {
		case neg:
			amount = "-" + amount
		case state.Flag('+'):
			amount = "+" + amount
		}
	}

	var text string
	switch verb {
	case 'c', 'C':
		text = m.curr.Code()
	case 'f', 'F', 'd', 'D':
		text = amount
	case 'q', 'Q':
		text = `"` + m.curr.Code() + " " + amount + `"`
	default:
		text = m.curr.Code() + " " + amount
	}

	// Calculating padding
	if w, ok := state.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(qty.Money="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

package qty

import (
	"errors"
	"fmt"
)

// ValidationCode is the machine-readable code carried by every [ValidationError].
const ValidationCode = "VALIDATION_ERROR"

var (
	// ErrValidation is matched by every error returned when a decimal string
	// is rejected at commit time.
	ErrValidation = errors.New("validation error")

	ErrEmpty         = errors.New("empty decimal")
	ErrExponent      = errors.New("exponent notation")
	ErrGrouping      = errors.New("digit grouping")
	ErrTrailingPoint = errors.New("trailing decimal point")
	ErrSyntax        = errors.New("invalid decimal syntax")
	ErrPrecision     = errors.New("too many fractional digits")

	// ErrRange is matched by every [RangeError].
	ErrRange = errors.New("range violation")

	ErrNotPositive  = errors.New("not greater than zero")
	ErrExceedsLimit = errors.New("exceeds limit")

	errScaleMismatch = errors.New("scale mismatch")
	errCurrMismatch  = errors.New("currency mismatch")
)

// ValidationError describes a syntax or precision violation found when
// a decimal string is committed.
// Msg is suitable for showing to the user as is.
type ValidationError struct {
	Code  string // always ValidationCode
	Msg   string // user-facing message
	Input string // rejected text
	kind  error
}

func newValidationError(kind error, input, msg string) *ValidationError {
	return &ValidationError{Code: ValidationCode, Msg: msg, Input: input, kind: kind}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Code, e.Input, e.Msg)
}

// Unwrap returns [ErrValidation] and the specific sentinel error,
// so both can be matched with [errors.Is].
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.kind}
}

// RangeError describes a business rule violation on a parsed value,
// such as a non-positive sale quantity or a quantity above the stock cap.
type RangeError struct {
	Value Quantity
	Limit Quantity
	Msg   string
	kind  error
}

func (e *RangeError) Error() string {
	return e.Msg
}

// Unwrap returns [ErrRange] and the specific sentinel error.
func (e *RangeError) Unwrap() []error {
	return []error{ErrRange, e.kind}
}

// RequirePositive returns a [RangeError] if q is not greater than zero.
func RequirePositive(q Quantity) error {
	if q.IsPos() {
		return nil
	}
	return &RangeError{
		Value: q,
		Msg:   "Quantity must be greater than zero",
		kind:  ErrNotPositive,
	}
}

// RequireAtMost returns a [RangeError] if q is greater than limit.
// The comparison is exact, see [Quantity.Cmp].
func RequireAtMost(q, limit Quantity) error {
	if q.Cmp(limit) <= 0 {
		return nil
	}
	return &RangeError{
		Value: q,
		Limit: limit,
		Msg:   fmt.Sprintf("Quantity cannot exceed %v", limit.Decimal()),
		kind:  ErrExceedsLimit,
	}
}

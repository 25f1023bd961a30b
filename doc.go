/*
Package qty implements exact quantity and money arithmetic for point-of-sale
and inventory input.
It turns text typed into a numeric field into fixed-point integers, computes
line totals without floating-point error, and renders results back as
grouped or compacted strings.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Per-unit precision scales from 0 to 5 fractional digits
  - Keystroke sanitizing, commit-time validation and canonical form
  - Arbitrary-precision scaled integers, no binary floats anywhere
  - Line totals rounded exactly once, half away from zero
  - Compact display with k, M, B and T suffixes

# Representation

A [Scale] is the number of fractional digits a unit of measure supports.
A [DecimalString] is a decimal in canonical form: no leading zeros and
exactly scale fractional digits.
A [Quantity] is a [math/big.Int] equal to value * 10^scale, together with
its scale, so that equality and ordering are integer comparisons.
[MinorUnits] count money in cents (or any other minor unit) at [MoneyScale],
and a [Money] pairs them with a [Currency].

# Input pipeline

Text flows through the package in a fixed order:

	raw text
	 -> SanitizeDraft       on every keystroke, never fails
	 -> Caps.Enforce        integer digits, then fraction, then length
	 -> IsValidDecimal      may the value be submitted?
	 -> Normalize           canonical DecimalString or *ValidationError
	 -> ToScaled            Quantity
	 -> LineTotalMinor      MinorUnits
	 -> FormatMoneyCompact  display only

# Rounding

Nothing is rounded while parsing: a value with more fractional digits than
its scale allows is rejected with [ErrPrecision].
[LineTotalMinor] rounds once, when the product of the price and the
quantity is brought back to minor units.
[FormatQtyDisplay] rounds half up for display and propagates carries
through the integer digits and into the next compact suffix.

# Errors

Syntax and precision errors are returned as [*ValidationError] values that
match [ErrValidation] and a specific sentinel error.
Business rule violations, such as a non-positive sale quantity, are
[*RangeError] values.
Functions that assume validated input, such as [ToScaled], panic when
that contract is broken.
*/
package qty

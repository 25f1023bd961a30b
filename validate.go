package qty

// IsValidDecimal returns true if raw is an unsigned decimal, such as "12"
// or "12.50", with at most scale fractional digits.
// It does not trim whitespace and rejects a trailing point ("12."), so a
// string accepted by IsValidDecimal can be submitted as is.
// Callers use it as a fast guard before [ToScaled] or [LineTotalMinor].
func IsValidDecimal(raw string, scale Scale) bool {
	return isValid(raw, scale, false)
}

// IsValidDecimalSigned is like [IsValidDecimal] but also accepts
// a single leading '-'.
func IsValidDecimalSigned(raw string, scale Scale) bool {
	return isValid(raw, scale, true)
}

func isValid(raw string, scale Scale, signed bool) bool {
	_, _, frac, ok := splitDecimal(raw, signed)
	return ok && len(frac) <= int(ClampScale(int(scale)))
}

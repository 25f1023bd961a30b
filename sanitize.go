package qty

// SanitizeDraft cleans text typed into a quantity field.
// It is meant to be called on every keystroke and never fails:
//   - every character other than an ASCII digit or '.' is dropped,
//     so thousands separators disappear;
//   - only the first '.' is kept, and a leading '.' becomes "0.";
//   - when the scale is 0 all dots are dropped;
//   - otherwise the fractional part is truncated to scale digits.
//
// A trailing unterminated point, such as "12.", is kept to support natural
// typing, although [Normalize] will reject it.
// An invalid scale is clamped with [ClampScale].
func SanitizeDraft(raw string, scale Scale) string {
	return sanitize(raw, ClampScale(int(scale)), false)
}

// SanitizeDraftSigned is like [SanitizeDraft] but keeps a single leading '-',
// so it can be used for inventory deltas.
func SanitizeDraftSigned(raw string, scale Scale) string {
	return sanitize(raw, ClampScale(int(scale)), true)
}

func sanitize(raw string, scale Scale, signed bool) string {
	buf := make([]byte, 0, len(raw)+1)
	neg, point, fracdigs := false, false, 0
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c == '-':
			if signed && !neg && len(buf) == 0 {
				neg = true
			}
		case c == '.':
			if point || scale == 0 {
				continue
			}
			point = true
			if len(buf) == 0 {
				buf = append(buf, '0')
			}
			buf = append(buf, '.')
		case isDigit(c):
			if point {
				if fracdigs >= int(scale) {
					continue
				}
				fracdigs++
			}
			buf = append(buf, c)
		}
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}

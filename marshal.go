package qty

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// parseWire converts a canonical decimal string received from storage or the
// network to a quantity.
// The scale is taken from the number of fractional digits.
func parseWire(s string) (Quantity, error) {
	scale := 0
	if _, frac, ok := strings.Cut(s, "."); ok {
		scale = len(frac)
	}
	if scale > int(MaxScale) {
		return Quantity{}, fmt.Errorf("%w: %v fractional digits, at most %v allowed", ErrPrecision, scale, MaxScale)
	}
	return ParseQuantity(s, Scale(scale))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted; numbers are read as
// decimal text and never go through a binary float.
// The scale is taken from the number of fractional digits.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*q, err = parseWire(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the canonical decimal as a JSON string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	s := q.String()
	data := make([]byte, 0, len(s)+2)
	data = append(data, '"')
	data = append(data, s...)
	data = append(data, '"')
	return data, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (q *Quantity) UnmarshalText(text []byte) error {
	var err error
	*q, err = parseWire(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Values of fixed-point database columns arrive as text and keep their scale.
// Float values are refused.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (q *Quantity) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*q, err = parseWire(value)
	case []byte:
		*q, err = parseWire(string(value))
	case int64:
		*q, err = parseWire(fmt.Sprint(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use *%T", Quantity{}, Quantity{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Quantity{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The quantity is stored as its canonical decimal string, so that a
// fixed-point column receives it without a binary float in between.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (q Quantity) Value() (driver.Value, error) {
	return q.String(), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// Only BSON strings and nulls are supported.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (q *Quantity) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		var s string
		s, err = parseBSONString(data)
		if err == nil {
			*q, err = parseWire(s)
		}
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Quantity{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// The quantity is stored as a BSON string holding the canonical decimal.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (q Quantity) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, bsonString(q.String()), nil
}

// parseBSONString decodes a BSON string.
// The byte order of the length prefix must be little-endian.
func parseBSONString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("invalid data length %v", len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return "", fmt.Errorf("invalid string length %v", l)
	}
	if data[l+4-1] != 0 {
		return "", fmt.Errorf("invalid null terminator %v", data[l+4-1])
	}
	return string(data[4 : l+4-1]), nil
}

// bsonString encodes s as a BSON string.
// The byte order of the length prefix is little-endian.
func bsonString(s string) []byte {
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

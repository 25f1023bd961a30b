// Package mongo stores quantities as BSON Decimal128 values with the
// github.com/globalsign/mgo driver.
package mongo

import (
	"fmt"

	"github.com/globalsign/mgo/bson"
	"github.com/govalues/qty"
)

// Quantity wraps [qty.Quantity] and implements [bson.Getter] and
// [bson.Setter], so that quantities are persisted as exact Decimal128
// values rather than strings or doubles.
// The stored exponent is -scale, so the scale survives a round trip.
type Quantity struct {
	qty.Quantity
}

// GetBSON implements the [bson.Getter] interface.
func (q Quantity) GetBSON() (interface{}, error) {
	d, err := bson.ParseDecimal128(q.String())
	if err != nil {
		return nil, fmt.Errorf("converting %v to Decimal128: %w", q.Quantity, err)
	}
	return d, nil
}

// SetBSON implements the [bson.Setter] interface.
// Decimal128 values and strings are accepted.
func (q *Quantity) SetBSON(raw bson.Raw) error {
	var s string
	switch raw.Kind {
	case 0x13:
		var d bson.Decimal128
		if err := raw.Unmarshal(&d); err != nil {
			return fmt.Errorf("unmarshaling Decimal128: %w", err)
		}
		s = d.String()
	case 0x02:
		if err := raw.Unmarshal(&s); err != nil {
			return fmt.Errorf("unmarshaling string: %w", err)
		}
	default:
		return fmt.Errorf("BSON kind 0x%02x is not supported", raw.Kind)
	}
	return q.UnmarshalText([]byte(s))
}

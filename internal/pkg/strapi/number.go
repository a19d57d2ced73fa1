package strapi

import (
	"bytes"
	"strconv"
)

// Number is a numeric field as the record store delivers it: a JSON
// number, a number-in-a-string, or null. Malformed values never fail
// decoding, they just leave the number invalid so callers can apply
// their documented defaults.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Value = 0
	n.Valid = false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var err error
		data, err = unquote(data)
		if err != nil {
			return nil
		}
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}

	n.Value = v
	n.Valid = true
	return nil
}

// Or returns the value, or def when the field was missing or
// malformed.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

// Float returns the value with invalid fields coerced to 0.
func (n Number) Float() float64 {
	return n.Or(0)
}

func unquote(data []byte) ([]byte, error) {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

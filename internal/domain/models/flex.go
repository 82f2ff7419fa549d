package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// The API historically accepted numeric fields both as JSON numbers and as
// numeric strings ("10" and 10 are equivalent). FlexInt and FlexFloat keep
// that contract; a value that cannot be coerced fails decoding with a
// descriptive error.

// FlexInt is an integer that unmarshals from a JSON number or numeric string.
type FlexInt int

// FlexFloat is a float that unmarshals from a JSON number or numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (v *FlexInt) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumeric(data)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Accept whole-valued floats such as 10.0.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != float64(int64(f)) {
			return fmt.Errorf("invalid integer value %q", raw)
		}
		n = int64(f)
	}
	*v = FlexInt(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(v))), nil
}

// Int returns the plain integer value.
func (v FlexInt) Int() int { return int(v) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *FlexFloat) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumeric(data)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid numeric value %q", raw)
	}
	*v = FlexFloat(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(v), 'f', -1, 64)), nil
}

// Float returns the plain float value.
func (v FlexFloat) Float() float64 { return float64(v) }

// unquoteNumeric strips surrounding quotes from a JSON string token and
// passes number tokens through untouched. A JSON null yields an empty
// string so the zero value is kept; an empty quoted string is not a number
// and fails.
func unquoteNumeric(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil || unquoted == "" {
			return "", fmt.Errorf("invalid numeric literal %s", data)
		}
		return unquoted, nil
	}
	return string(data), nil
}

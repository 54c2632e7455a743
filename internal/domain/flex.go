package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that unmarshals from either a JSON number or a
// numeric JSON string. Clients send guest and room counts both ways.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("flexint: value is null")
	}

	s := string(data)
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("flexint: %w", err)
		}
		s = strings.TrimSpace(unquoted)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("flexint: %q is not an integer", s)
	}

	*f = FlexInt(n)
	return nil
}

// Int returns the plain integer value.
func (f FlexInt) Int() int {
	return int(f)
}

// FlexID is an identifier that unmarshals from either a JSON number or a
// JSON string. Upstream feeds are inconsistent about hotel id types, and
// the merge join requires a single representation.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flexid: %w", err)
		}
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexid: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler. IDs always serialize as strings.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String returns the identifier as a plain string.
func (f FlexID) String() string {
	return string(f)
}

package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The UI layer (and imported field-bags) sends numeric-like values as
// strings or numbers interchangeably. Flex types accept either form and
// coerce blank or invalid values to zero instead of failing the request.

// FlexFloat is a float64 that unmarshals from a JSON number or string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = FlexFloat(parseFlexFloat(b))
	return nil
}

// FlexInt is an int that unmarshals from a JSON number or string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (i *FlexInt) UnmarshalJSON(b []byte) error {
	*i = FlexInt(parseFlexFloat(b))
	return nil
}

// FlexBool is a bool that unmarshals from a JSON bool or string.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (fb *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "true" {
		*fb = true
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err == nil {
			v, err := strconv.ParseBool(strings.TrimSpace(str))
			*fb = FlexBool(err == nil && v)
			return nil
		}
	}
	*fb = false
	return nil
}

func parseFlexFloat(b []byte) float64 {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return 0
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return 0
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return 0
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

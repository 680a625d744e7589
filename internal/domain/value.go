package domain

import (
	"encoding/json"
	"fmt"
)

// Value is the filled-in value of an item. At most one of the typed
// slots is set, matching the item kind: checkbox items hold a bool, text
// and select items hold a string, number items hold a float.
//
// The zero Value means "not filled in yet". It marshals to JSON null and
// scalar values marshal to bare JSON scalars, so documents round-trip
// losslessly through serialization.
type Value struct {
	b *bool
	n *float64
	s *string
}

// BoolValue returns a Value holding a checkbox state.
func BoolValue(v bool) Value { return Value{b: &v} }

// NumberValue returns a Value holding a numeric reading.
func NumberValue(v float64) Value { return Value{n: &v} }

// TextValue returns a Value holding free text or a select choice.
func TextValue(v string) Value { return Value{s: &v} }

// IsSet returns true if the value has been filled in.
func (v Value) IsSet() bool { return v.b != nil || v.n != nil || v.s != nil }

// Bool returns the checkbox state. Unset values read as false, the
// checkbox default.
func (v Value) Bool() bool { return v.b != nil && *v.b }

// Number returns the numeric reading and whether it is set.
func (v Value) Number() (float64, bool) {
	if v.n == nil {
		return 0, false
	}
	return *v.n, true
}

// Text returns the text content and whether it is set.
func (v Value) Text() (string, bool) {
	if v.s == nil {
		return "", false
	}
	return *v.s, true
}

// String renders the value for display. Unset values render empty.
func (v Value) String() string {
	switch {
	case v.b != nil:
		if *v.b {
			return "true"
		}
		return "false"
	case v.n != nil:
		return trimFloat(*v.n)
	case v.s != nil:
		return *v.s
	}
	return ""
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.6f", f)
	// Strip trailing zeros and a dangling decimal point.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// clone returns a copy whose pointers alias nothing in the original.
func (v Value) clone() Value {
	out := Value{}
	if v.b != nil {
		b := *v.b
		out.b = &b
	}
	if v.n != nil {
		n := *v.n
		out.n = &n
	}
	if v.s != nil {
		s := *v.s
		out.s = &s
	}
	return out
}

// MarshalJSON emits the bare scalar, or null when unset.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.b != nil:
		return json.Marshal(*v.b)
	case v.n != nil:
		return json.Marshal(*v.n)
	case v.s != nil:
		return json.Marshal(*v.s)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a bool, number, string, or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = Value{}
	if string(data) == "null" {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.b = &b
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.n = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.s = &s
		return nil
	}
	return fmt.Errorf("value must be a bool, number, or string, got %s", data)
}

package label

import (
	"fmt"
	"strconv"
)

// Value is an immutable display label.
type Value struct {
	text string
}

// New returns a Value holding s.
func New(s string) Value {
	return Value{text: s}
}

// String returns the label text exactly as given to New.
func (v Value) String() string { return v.text }

// IsEmpty reports whether the label has no text.
func (v Value) IsEmpty() bool { return v.text == "" }

// Clone returns an independent copy of v.
// Value is a plain value type, so the copy shares no mutable state.
func (v Value) Clone() Value {
	return Value{text: v.text}
}

// Equal reports whether two labels carry the same text.
func (v Value) Equal(o Value) bool { return v.text == o.text }

// Format implements fmt.Formatter.
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = f.Write([]byte(strconv.Quote(v.text)))
	case 's', 'v':
		_, _ = f.Write([]byte(v.text))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(label.Value=%s)", verb, v.text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(b []byte) error {
	v.text = string(b)
	return nil
}

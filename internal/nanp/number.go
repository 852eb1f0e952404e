package nanp

import (
	"cmp"
	"fmt"
)

// Number is a validated NANP phone number. The zero value is not a valid
// number; it is only returned together with an error.
type Number struct {
	area     string
	exchange string
	line     string
}

// AreaCode returns the three digit numbering plan area.
func (n Number) AreaCode() string { return n.area }

// ExchangeCode returns the three digit central office code.
func (n Number) ExchangeCode() string { return n.exchange }

// LineNumber returns the four digit subscriber number.
func (n Number) LineNumber() string { return n.line }

// IsZero reports whether n is the zero Number.
func (n Number) IsZero() bool { return n == Number{} }

// Digits returns the ten digits without formatting.
func (n Number) Digits() string { return n.area + n.exchange + n.line }

// Int returns the ten digits as an integer. It is the sort key of the number.
func (n Number) Int() uint64 {
	var v uint64
	for i := 0; i < len(n.area); i++ {
		v = v*10 + uint64(n.area[i]-'0')
	}
	for i := 0; i < len(n.exchange); i++ {
		v = v*10 + uint64(n.exchange[i]-'0')
	}
	for i := 0; i < len(n.line); i++ {
		v = v*10 + uint64(n.line[i]-'0')
	}
	return v
}

// String renders the number as "(AAA) EEE-LLLL".
func (n Number) String() string {
	if n.IsZero() {
		return ""
	}
	return "(" + n.area + ") " + n.exchange + "-" + n.line
}

// GoString makes %#v output readable in test failures.
func (n Number) GoString() string {
	return fmt.Sprintf("nanp.Number(%q)", n.Digits())
}

// Compare returns -1, 0 or +1 depending on whether n sorts before, equal to or after other.
func (n Number) Compare(other Number) int {
	return cmp.Compare(n.Int(), other.Int())
}

// Less reports whether n sorts before other.
func (n Number) Less(other Number) bool {
	return n.Int() < other.Int()
}

// Equal reports whether both numbers have the same three parts.
func (n Number) Equal(other Number) bool {
	return n == other
}

// MarshalText encodes the number in its display form.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText parses any text accepted by Normalize.
func (n *Number) UnmarshalText(text []byte) error {
	parsed, err := Normalize(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

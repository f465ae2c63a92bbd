package inventory

import "strings"

// Address is a network address attached to a computer. It is not validated.
type Address struct {
	value string
}

// NewAddress wraps value as an Address
func NewAddress(value string) Address {
	return Address{value: value}
}

// Value returns the address string
func (a Address) Value() string {
	return a.value
}

func (a Address) String() string {
	return a.value
}

// Clone returns a copy of the address
func (a Address) Clone() Address {
	return a
}

// Render writes the address as a single leaf line
func (a Address) Render(sb *strings.Builder, prefix string, last bool) {
	writeLine(sb, prefix, last, a.value)
}

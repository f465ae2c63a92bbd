package inventory

import (
	"fmt"
	"strings"
)

// Computer is a named host owning its addresses and hardware components.
// Names are not required to be unique.
type Computer struct {
	name       string
	addresses  Collection[Address]
	components Collection[Component]
}

// NewComputer creates a computer with no addresses or components
func NewComputer(name string) *Computer {
	return &Computer{name: name}
}

// Name returns the host name
func (c *Computer) Name() string {
	return c.name
}

func (c *Computer) String() string {
	return c.name
}

// AddAddress appends a network address and returns the computer for chaining
func (c *Computer) AddAddress(addr string) *Computer {
	c.addresses.Add(NewAddress(addr))
	return c
}

// AddComponent takes ownership of comp and returns the computer for chaining.
// A nil component panics with an error wrapping ErrInvalidConfiguration.
func (c *Computer) AddComponent(comp Component) *Computer {
	if comp == nil {
		panic(fmt.Errorf("nil component for computer %q: %w", c.name, ErrInvalidConfiguration))
	}
	c.components.Add(comp)
	return c
}

// Addresses returns the computer's addresses in insertion order
func (c *Computer) Addresses() []Address {
	return c.addresses.Items()
}

// Components returns the computer's components in insertion order. The
// returned slice is a copy but the components are the live owned values.
func (c *Computer) Components() []Component {
	return c.components.Items()
}

// ComponentCount returns the number of attached components
func (c *Computer) ComponentCount() int {
	return c.components.Len()
}

// Render writes the host line, then its addresses followed by its
// components. The last of the combined list gets the last marker.
func (c *Computer) Render(sb *strings.Builder, prefix string, last bool) {
	writeLine(sb, prefix, last, "Host: "+c.name)

	children := make([]Renderer, 0, c.addresses.Len()+c.components.Len())
	for _, addr := range c.addresses.All() {
		children = append(children, addr)
	}
	for _, comp := range c.components.All() {
		children = append(children, comp)
	}
	renderChildren(sb, childPrefix(prefix, last), children)
}

// Clone returns a deep copy sharing no addresses or components with c
func (c *Computer) Clone() *Computer {
	return &Computer{
		name:       c.name,
		addresses:  c.addresses.Clone(),
		components: c.components.Clone(),
	}
}

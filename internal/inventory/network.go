package inventory

import (
	"fmt"
	"strings"
)

// Network is the root of an inventory. It exclusively owns its computers and
// everything below them. A Network is not safe for concurrent use; callers
// that share one must provide their own locking.
type Network struct {
	name      string
	computers Collection[*Computer]
}

// NewNetwork creates an empty network
func NewNetwork(name string) *Network {
	return &Network{name: name}
}

// Name returns the network name
func (n *Network) Name() string {
	return n.name
}

// AddComputer takes ownership of c and returns the network for chaining.
// A nil computer panics with an error wrapping ErrInvalidConfiguration.
func (n *Network) AddComputer(c *Computer) *Network {
	if c == nil {
		panic(fmt.Errorf("nil computer for network %q: %w", n.name, ErrInvalidConfiguration))
	}
	n.computers.Add(c)
	return n
}

// Computers returns the network's computers in insertion order
func (n *Network) Computers() []*Computer {
	return n.computers.Items()
}

// FindComputer returns the first computer named name. The result is a live
// reference into n, not a copy. It returns an error wrapping ErrNotFound when
// no computer matches.
func (n *Network) FindComputer(name string) (*Computer, error) {
	c, ok := n.computers.Find(func(c *Computer) bool {
		return c.name == name
	})
	if !ok {
		return nil, fmt.Errorf("computer %q in network %q: %w", name, n.name, ErrNotFound)
	}
	return c, nil
}

// Render writes the network header followed by the tree of its computers.
// The header has no leading newline and the output has no trailing newline.
func (n *Network) Render(sb *strings.Builder) {
	sb.WriteString("Network: ")
	sb.WriteString(n.name)

	children := make([]Renderer, 0, n.computers.Len())
	for _, c := range n.computers.All() {
		children = append(children, c)
	}
	renderChildren(sb, "", children)
}

// String returns the rendered tree
func (n *Network) String() string {
	var sb strings.Builder
	n.Render(&sb)
	return sb.String()
}

// Clone returns a deep copy of the network. No node reachable from the copy
// is reachable from n.
func (n *Network) Clone() *Network {
	return n.CloneAs(n.name)
}

// CloneAs returns a deep copy of the network under a different name
func (n *Network) CloneAs(name string) *Network {
	return &Network{
		name:      name,
		computers: n.computers.Clone(),
	}
}

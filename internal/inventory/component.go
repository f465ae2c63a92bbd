package inventory

import (
	"fmt"
	"strings"
)

// Component is a piece of hardware attached to a computer. The set of
// implementations is closed: CPU, Memory and Disk.
type Component interface {
	Renderer

	// Label returns the component's line text without tree markers
	Label() string

	// Clone returns an independent deep copy of the component
	Clone() Component

	component()
}

// CPU is a processor with a core count and clock speed
type CPU struct {
	cores    int
	clockMHz int
}

// NewCPU creates a CPU component
func NewCPU(cores, clockMHz int) *CPU {
	return &CPU{cores: cores, clockMHz: clockMHz}
}

func (c *CPU) Cores() int    { return c.cores }
func (c *CPU) ClockMHz() int { return c.clockMHz }

func (c *CPU) Label() string {
	return fmt.Sprintf("CPU, %d cores @ %dMHz", c.cores, c.clockMHz)
}

// Render writes the CPU line. A CPU is rendered whether or not it is the last
// child of its computer.
func (c *CPU) Render(sb *strings.Builder, prefix string, last bool) {
	writeLine(sb, prefix, last, c.Label())
}

func (c *CPU) Clone() Component {
	clone := *c
	return &clone
}

func (*CPU) component() {}

// Memory is installed RAM measured in MiB
type Memory struct {
	sizeMiB int
}

// NewMemory creates a Memory component
func NewMemory(sizeMiB int) *Memory {
	return &Memory{sizeMiB: sizeMiB}
}

func (m *Memory) SizeMiB() int { return m.sizeMiB }

func (m *Memory) Label() string {
	return fmt.Sprintf("Memory, %d MiB", m.sizeMiB)
}

func (m *Memory) Render(sb *strings.Builder, prefix string, last bool) {
	writeLine(sb, prefix, last, m.Label())
}

func (m *Memory) Clone() Component {
	clone := *m
	return &clone
}

func (*Memory) component() {}

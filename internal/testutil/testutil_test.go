package testutil

import (
	"testing"

	"github.com/jbweber/homelab/nettree/internal/inventory"
)

func TestSampleRendering(t *testing.T) {
	got := inventory.SampleNetwork().String()
	if got != SampleRendering {
		t.Errorf("SampleNetwork rendering mismatch\nexpected:\n%s\ngot:\n%s", SampleRendering, got)
	}
}

func TestNewTestNetwork(t *testing.T) {
	n := NewTestNetwork("lab", 3)

	if n.Name() != "lab" {
		t.Errorf("Expected name 'lab', got '%s'", n.Name())
	}

	computers := n.Computers()
	if len(computers) != 3 {
		t.Fatalf("Expected 3 computers, got %d", len(computers))
	}

	for i, c := range computers {
		expected := "host-" + string(rune('1'+i))
		if c.Name() != expected {
			t.Errorf("Expected computer %d to be named '%s', got '%s'", i, expected, c.Name())
		}
		if c.ComponentCount() != 2 {
			t.Errorf("Expected 2 components on %s, got %d", c.Name(), c.ComponentCount())
		}
	}
}

func TestRenderLines(t *testing.T) {
	lines := RenderLines(NewTestNetwork("lab", 1))

	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Network: lab" {
		t.Errorf("Expected header 'Network: lab', got '%s'", lines[0])
	}
}

func TestRenderNode(t *testing.T) {
	lines := RenderNode(t, inventory.NewMemory(512))

	if len(lines) != 1 || lines[0] != `\-Memory, 512 MiB` {
		t.Errorf("Unexpected node rendering: %q", lines)
	}
}

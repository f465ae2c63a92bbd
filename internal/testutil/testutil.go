package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jbweber/homelab/nettree/internal/inventory"
)

// SampleRendering is the exact tree produced by inventory.SampleNetwork
const SampleRendering = `Network: MISIS network
+-Host: server1.misis.ru
| +-192.168.1.1
| +-CPU, 4 cores @ 2500MHz
| \-Memory, 16000 MiB
\-Host: server2.misis.ru
  +-10.0.0.1
  +-CPU, 8 cores @ 3200MHz
  \-HDD, 2000 GiB
    +-[0]: 500 GiB, system
    \-[1]: 1500 GiB, data`

// NewTestNetwork builds a network with the given number of hosts. Host i
// (1-based) is named "host-i", has address "10.0.0.i", a CPU and memory.
func NewTestNetwork(name string, hosts int) *inventory.Network {
	n := inventory.NewNetwork(name)
	for i := 1; i <= hosts; i++ {
		n.AddComputer(
			inventory.NewComputer(fmt.Sprintf("host-%d", i)).
				AddAddress(fmt.Sprintf("10.0.0.%d", i)).
				AddComponent(inventory.NewCPU(2, 2000)).
				AddComponent(inventory.NewMemory(4096)),
		)
	}
	return n
}

// RenderLines renders n and splits the output into lines
func RenderLines(n *inventory.Network) []string {
	return strings.Split(n.String(), "\n")
}

// RenderNode renders a single node with an empty prefix as the last child
// and returns its lines without the leading newline.
func RenderNode(t *testing.T, node inventory.Renderer) []string {
	t.Helper()

	var sb strings.Builder
	node.Render(&sb, "", true)

	out := sb.String()
	if !strings.HasPrefix(out, "\n") {
		t.Fatalf("rendered node does not start with a newline: %q", out)
	}
	return strings.Split(out[1:], "\n")
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/nettree/internal/inventory"
	"github.com/jbweber/homelab/nettree/internal/logger"
)

const demoComputer = "server2.misis.ru"

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Clone the sample network, modify the copy, and show both.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, cmd.OutOrStdout())
		},
	}
}

func runDemo(cmd *cobra.Command, out io.Writer) error {
	log := logger.FromContext(cmd.Context())

	original := inventory.SampleNetwork()
	fmt.Fprintf(out, "=== Original network ===\n%s\n", original)

	clone := original.Clone()
	c, err := clone.FindComputer(demoComputer)
	if err != nil {
		return err
	}
	log.Debugw("found computer in clone", "computer", c)

	c.AddComponent(inventory.NewDisk(inventory.SSD, 500).AddPartition(500, "fast_storage"))

	fmt.Fprintf(out, "\n=== Modified clone ===\n%s\n", clone)
	fmt.Fprintf(out, "\n=== Original network (unchanged) ===\n%s\n", original)

	before, err := original.FindComputer(demoComputer)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s components: original %d, clone %d\n", demoComputer, before.ComponentCount(), c.ComponentCount())

	if before.ComponentCount() == c.ComponentCount() {
		return fmt.Errorf("clone shares components with the original network")
	}
	return nil
}

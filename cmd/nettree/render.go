package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/nettree/internal/inventory"
	"github.com/jbweber/homelab/nettree/internal/logger"
)

func newRenderCommand() *cobra.Command {
	var clone bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the sample network as a tree.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := inventory.SampleNetwork()
			if clone {
				n = n.Clone()
			}

			logger.FromContext(cmd.Context()).Debugw("rendering network", "network", n.Name(), "clone", clone)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}

	cmd.Flags().BoolVar(&clone, "clone", false, "render a deep copy instead of the original")

	return cmd
}

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <computer>",
		Short: "Print the subtree of the first computer with the given name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := inventory.SampleNetwork().FindComputer(args[0])
			if err != nil {
				return err
			}

			var sb strings.Builder
			c.Render(&sb, "", true)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimPrefix(sb.String(), "\n"))
			return err
		},
	}
}

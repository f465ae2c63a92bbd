package main

import (
	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/nettree/internal/config"
	"github.com/jbweber/homelab/nettree/internal/logger"
)

// newRootCommand builds the nettree command tree
func newRootCommand() *cobra.Command {
	cfg := config.NewConfig()

	root := &cobra.Command{
		Use:           "nettree",
		Short:         "Render and explore a networked computer inventory.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.ApplyLogging(); err != nil {
				return err
			}
			cmd.SetContext(logger.WithContext(cmd.Context(), logger.Logger()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		newRenderCommand(),
		newFindCommand(),
		newDemoCommand(),
		newServeCommand(cfg),
	)

	return root
}

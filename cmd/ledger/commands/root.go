package commands

import (
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	"github.com/spf13/cobra"
)

var cfg config.Config

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg = config.Load()

	root := &cobra.Command{
		Use:          "ledger",
		Short:        "In-memory account ledger with concurrent transfers",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd())
	return root
}

package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/app"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/platform/telemetry"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := telemetry.ParseLevel(cfg.LogLevel)
			log := telemetry.NewLogger(os.Stdout, config.ServiceName, level)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.New(cfg, log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")

	return cmd
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Atomic-Germ/mcp-api-consumer/api"
	"github.com/Atomic-Germ/mcp-api-consumer/telemetry"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
	"github.com/spf13/cobra"
)

// newServeCmd creates the 'serve' subcommand running the HTTP interface.
func newServeCmd(svc api.APIService) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefault(configPath)
			if err := telemetry.Init(cfg); err != nil {
				utils.Warn("tracing disabled: %v", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return api.StartHTTPServer(ctx, cfg, svc)
		},
	}
}

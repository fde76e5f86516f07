package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/planner/internal/auth/app"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server. Migrations are applied on startup and the
server stops gracefully on SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "load config").Wrap(err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "initialize application").Wrap(err)
	}

	return application.Run()
}

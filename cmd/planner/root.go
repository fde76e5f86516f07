package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/planner/internal/auth/app"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Planner authentication service",
		Long: `Planner authentication service: account registration, email and
password login, session tokens and password reset for the personal planner.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")
	app.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewHashPasswordCmd())

	return cmd
}

// loadConfig layers the config file and flags over the environment.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	return app.Overlay(app.LoadConfig(), configFile, cmd.Flags())
}

package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/planner/internal/auth/app"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply all pending migrations to the configured database and exit.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "load config").Wrap(err)
	}

	cmd.Printf("Connecting to %s database...\n", cfg.DatabaseDriver)
	db, err := app.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer db.Close()

	cmd.Println("Running migrations...")
	if err := db.ApplyMigrations(); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}

	cmd.Println("Migrations completed successfully")
	return nil
}

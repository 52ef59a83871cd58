package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/trapit/trapit/internal/trapit/app"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply all pending migrations to the configured database and exit.`,
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}

	app.RegisterFlags(cmd.Flags())
	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	cmd.Printf("Applying %s migrations...\n", cfg.DatabaseDriver)
	st, err := app.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}
	defer st.Close()

	cmd.Println("Migrations completed successfully")
	return nil
}

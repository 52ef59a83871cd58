package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command. Running it without a subcommand
// starts the HTTP server.
func NewRootCmd() *cobra.Command {
	serve := NewServeCmd()

	cmd := &cobra.Command{
		Use:   "trapit",
		Short: "TrapIT backend - accounts, password recovery and trap registry",
		Long: `TrapIT backend serves the account, password recovery and trap
registration API used by the TrapIT pest-trap app.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewUsersCmd())

	return cmd
}

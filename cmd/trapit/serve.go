package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/trapit/trapit/internal/trapit/app"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	app.RegisterFlags(cmd.Flags())
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "initialize application").Wrap(err)
	}

	return application.Run()
}

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/trapit/trapit/internal/trapit/app"
	"github.com/trapit/trapit/internal/trapit/service"
)

// NewUsersCmd creates the users command group.
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every registered account",
		Args:  cobra.NoArgs,
		RunE:  runUsersList,
	}
	app.RegisterFlags(list.Flags())

	cmd.AddCommand(list)
	return cmd
}

func runUsersList(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	st, err := app.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "open store").Wrap(err)
	}
	defer st.Close()

	accounts, err := (&service.AccountService{Store: st}).ListAccounts(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tFULL NAME\tCREATED")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Email, a.FullName, a.CreatedAt.Format(time.RFC3339))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	cmd.Printf("%d account(s)\n", len(accounts))
	return nil
}

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trapit/trapit/internal/trapit/app"
	"github.com/trapit/trapit/internal/trapit/service"
	"github.com/trapit/trapit/pkg/cryptox"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"TRAPIT_DATABASE_DRIVER", "TRAPIT_DATABASE_FILE", "MAIL_DRIVER", "EMAIL_USER", "EMAIL_PASS", "PORT", "DATABASE_URL"} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "trapit.db")
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "users"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("port"), "root runs serve and accepts its flags")
}

func TestMigrateCmd(t *testing.T) {
	dbFile := isolateEnv(t)

	out, err := execute(t, "migrate", "--database-file", dbFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Migrations completed successfully")
	assert.FileExists(t, dbFile)
}

func TestMigrateCmd_InvalidConfig(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "migrate", "--database-driver", "postgres")
	require.Error(t, err)
}

func TestUsersListCmd(t *testing.T) {
	dbFile := isolateEnv(t)
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	cfg, err := app.LoadConfig("", nil)
	require.NoError(t, err)
	cfg.DatabaseFile = dbFile

	st, err := app.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	accounts := &service.AccountService{Store: st, Hasher: cryptox.Hasher{}}
	require.NoError(t, accounts.Register(context.Background(), "ann@trapit.io", "Ann Smith", "p1"))
	require.NoError(t, accounts.Register(context.Background(), "bob@trapit.io", "", "p2"))
	require.NoError(t, st.Close())

	out, err := execute(t, "users", "list", "--database-file", dbFile)
	require.NoError(t, err)
	assert.Contains(t, out, "EMAIL")
	assert.Contains(t, out, "ann@trapit.io")
	assert.Contains(t, out, "Ann Smith")
	assert.Contains(t, out, "bob@trapit.io")
	assert.Contains(t, out, "2 account(s)")
	assert.NotContains(t, out, "$argon2id$")
}

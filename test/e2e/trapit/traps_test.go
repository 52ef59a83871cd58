//go:build e2e

package trapit_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trapit/trapit/pkg/trapitsdk"
)

// TestTrapRegistry creates, activates, lists and deletes a trap.
func TestTrapRegistry(t *testing.T) {
	c := setupTrapitContainer(t, nil)
	client := trapitsdk.NewClient(c.BaseURL)
	ctx := t.Context()

	registerUser(t, client)

	created, err := client.CreateTrap(ctx, trapitsdk.CreateTrapRequest{
		Email:    testEmail,
		TrapID:   "TRAP-001",
		TrapName: "Shed Trap",
	})
	require.NoError(t, err)
	require.Equal(t, "inactive", created.Trap.Status)

	_, err = client.CreateTrap(ctx, trapitsdk.CreateTrapRequest{Email: testEmail, TrapID: "TRAP-001"})
	assertAPIError(t, err, http.StatusBadRequest, "Trap ID already exists")

	_, err = client.UpdateTrapStatus(ctx, "TRAP-001", "active")
	require.NoError(t, err)

	traps, err := client.ListTraps(ctx, testEmail)
	require.NoError(t, err)
	require.Equal(t, []trapitsdk.Trap{{TrapID: "TRAP-001", TrapName: "Shed Trap", Status: "active"}}, traps)

	_, err = client.DeleteTrap(ctx, "TRAP-001")
	require.NoError(t, err)

	_, err = client.DeleteTrap(ctx, "TRAP-001")
	assertAPIError(t, err, http.StatusNotFound, "Trap not found")
}

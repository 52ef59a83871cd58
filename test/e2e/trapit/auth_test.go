//go:build e2e

package trapit_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trapit/trapit/pkg/trapitsdk"
)

// TestAccountLifecycle registers, logs in, renames and changes the password.
func TestAccountLifecycle(t *testing.T) {
	c := setupTrapitContainer(t, nil)
	client := trapitsdk.NewClient(c.BaseURL)
	ctx := t.Context()

	registerUser(t, client)

	_, err := client.Register(ctx, trapitsdk.RegisterRequest{Email: testEmail, Password: "other"})
	assertAPIError(t, err, http.StatusBadRequest, "User already exists")

	login, err := client.Login(ctx, trapitsdk.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.Equal(t, testFullName, login.User.FullName)

	_, err = client.Login(ctx, trapitsdk.LoginRequest{Email: testEmail, Password: "wrong"})
	assertAPIError(t, err, http.StatusUnauthorized, "Invalid credentials")

	renamed, err := client.UpdateName(ctx, trapitsdk.UpdateNameRequest{Email: testEmail, FullName: "Chief Ranger"})
	require.NoError(t, err)
	require.Equal(t, "Chief Ranger", renamed.FullName)

	_, err = client.ChangePassword(ctx, trapitsdk.ChangePasswordRequest{
		Email:           testEmail,
		CurrentPassword: testPassword,
		NewPassword:     "Wallaby456!",
	})
	require.NoError(t, err)

	login, err = client.Login(ctx, trapitsdk.LoginRequest{Email: testEmail, Password: "Wallaby456!"})
	require.NoError(t, err)
	require.Equal(t, "Chief Ranger", login.User.FullName)
}

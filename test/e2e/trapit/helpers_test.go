//go:build e2e

package trapit_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/trapit/trapit/pkg/trapitsdk"
)

/*
 * Container setup and shared assertions for the TrapIT backend end-to-end
 * tests. The service runs with the log mail driver so reset codes can be
 * read back from the container output.
 */

const (
	testImageName = "trapit-backend-test:latest"

	testEmail    = "ranger@trapit.io"
	testFullName = "Park Ranger"
	testPassword = "Possum123!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building TrapIT Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up TrapIT Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/trapit/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

type trapitContainer struct {
	testcontainers.Container
	BaseURL string
}

// setupTrapitContainer starts the backend and returns it with its base URL.
// Extra env entries override the defaults.
func setupTrapitContainer(t *testing.T, env map[string]string) *trapitContainer {
	t.Helper()
	ctx := context.Background()

	containerEnv := map[string]string{
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
		"MAIL_DRIVER":        "log",
		"RESET_REQUIRES_OTP": "true",
		"OTP_TTL":            "5m",
	}
	for k, v := range env {
		containerEnv[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"3000/tcp"},
		Env:          containerEnv,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("3000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "3000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return &trapitContainer{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
	}
}

// lastOTP scans the container log for the most recent code logged for email.
func (c *trapitContainer) lastOTP(t *testing.T, email string) string {
	t.Helper()

	var code string
	require.Eventually(t, func() bool {
		logs, err := c.Logs(context.Background())
		if err != nil {
			return false
		}
		defer logs.Close()

		scanner := bufio.NewScanner(logs)
		for scanner.Scan() {
			line := scanner.Text()
			start := strings.IndexByte(line, '{')
			if start < 0 {
				continue
			}

			var entry struct {
				To  string `json:"to"`
				OTP string `json:"otp"`
			}
			if json.Unmarshal([]byte(line[start:]), &entry) == nil && entry.To == email && entry.OTP != "" {
				code = entry.OTP
			}
		}
		return code != ""
	}, 10*time.Second, 200*time.Millisecond, "no reset code logged for %s", email)

	return code
}

// registerUser registers the default test account.
func registerUser(t *testing.T, client *trapitsdk.Client) {
	t.Helper()
	resp, err := client.Register(t.Context(), trapitsdk.RegisterRequest{
		Email:    testEmail,
		FullName: testFullName,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "User registered successfully", resp.Message)
}

// assertAPIError verifies err is an API error with the given status and message.
func assertAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var apiErr *trapitsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected API error, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *trapitsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

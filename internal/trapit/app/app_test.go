package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trapit/trapit/internal/trapit/notify"
	"github.com/trapit/trapit/pkg/errutil"
	"github.com/trapit/trapit/pkg/trapitsdk"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                3000,
		ShutdownGracePeriod: time.Second,
		CORSAllowedOrigins:  []string{"*"},
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "trapit.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		OTPTTL:              5 * time.Minute,
		OTPRetention:        time.Hour,
		ResetRequiresOTP:    true,
		Mail:                MailConfig{Driver: MailLog},
	}
}

func TestNew_ServesRoutes(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	client := trapitsdk.NewClient(srv.URL)
	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ok", ready.Status)
	assert.Equal(t, BuildVersion, ready.Version)

	_, err = client.Register(t.Context(), trapitsdk.RegisterRequest{Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)
	_, err = client.SendOTP(t.Context(), "a@x.com")
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "trapit_otp_issued_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_SweepEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.OTPSweepInterval = time.Hour

	application, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, application.housekeepingService)

	application.housekeepingService.Start()
	require.NoError(t, application.Shutdown())
}

func TestNew_BadDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "missing", "dir", "trapit.db")

	_, err := New(cfg)
	require.Error(t, err)
}

func TestNew_UnusablePepperPath(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg.PepperFile = filepath.Join(blocker, "pepper")

	_, err := New(cfg)
	errutil.AssertErrorCode(t, err, "PEPPER_LOAD_FAILED")
	assert.NoFileExists(t, cfg.DatabaseFile, "startup stops before opening the database")
}

func TestNewNotifier(t *testing.T) {
	cfg := testConfig(t)

	n, err := NewNotifier(cfg)
	require.NoError(t, err)
	assert.IsType(t, notify.LogNotifier{}, n)

	cfg.Mail = MailConfig{
		Driver:   MailSMTP,
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		Username: "u",
		Password: "p",
		Retries:  2,
	}
	n, err = NewNotifier(cfg)
	require.NoError(t, err)
	assert.IsType(t, &notify.Retrying{}, n)

	cfg.Mail = MailConfig{Driver: MailResend, ResendAPIKey: "re_test", From: "otp@trapit.io"}
	n, err = NewNotifier(cfg)
	require.NoError(t, err)
	assert.IsType(t, &notify.ResendNotifier{}, n)

	cfg.Mail.Driver = "pigeon"
	_, err = NewNotifier(cfg)
	require.Error(t, err)
}

package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trapit/trapit/pkg/errutil"
)

var configEnvKeys = []string{
	"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD", "CORS_ALLOWED_ORIGINS",
	"TRAPIT_DATABASE_DRIVER", "TRAPIT_DATABASE_FILE", "DATABASE_URL", "TRAPIT_PEPPER_FILE",
	"OTP_TTL", "OTP_SWEEP_INTERVAL", "OTP_RETENTION", "RESET_REQUIRES_OTP",
	"MAIL_DRIVER", "MAIL_FROM", "SMTP_HOST", "SMTP_PORT", "EMAIL_USER", "EMAIL_PASS",
	"RESEND_API_KEY", "MAIL_RETRIES", "MAIL_RETRY_BASE",
}

// clearConfigEnv blanks every config variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trapit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "trapit.db", cfg.DatabaseFile)
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.Zero(t, cfg.OTPSweepInterval)
	assert.True(t, cfg.ResetRequiresOTP)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, MailLog, cfg.Mail.Driver)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTPHost)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
}

func TestLoadConfig_Env(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("OTP_TTL", "10")
	t.Setenv("RESET_REQUIRES_OTP", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.trapit.io, https://admin.trapit.io")
	t.Setenv("EMAIL_USER", "noreply@trapit.io")
	t.Setenv("EMAIL_PASS", "secret")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.False(t, cfg.ResetRequiresOTP)
	assert.Equal(t, []string{"https://app.trapit.io", "https://admin.trapit.io"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, MailSMTP, cfg.Mail.Driver, "EMAIL_USER selects smtp")
	assert.Equal(t, "noreply@trapit.io", cfg.Mail.From)
}

func TestLoadConfig_FileAndFlags(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "8081")

	path := writeConfigFile(t, `
port: 9000
log_format: text
otp_ttl: 2m
mail:
  driver: resend
  from: otp@trapit.io
  resend_api_key: re_test
`)

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--port=9100"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port, "flag beats file")
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2*time.Minute, cfg.OTPTTL)
	assert.True(t, cfg.ResetRequiresOTP, "unset flag keeps its value from env")
	assert.Equal(t, MailResend, cfg.Mail.Driver)
	assert.Equal(t, "re_test", cfg.Mail.ResendAPIKey)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTPHost, "file keeps sibling defaults")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
}

func TestConfig_Validate(t *testing.T) {
	clearConfigEnv(t)
	base, err := LoadConfig("", nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres }},
		{"zero ttl", func(c *Config) { c.OTPTTL = 0 }},
		{"negative sweep", func(c *Config) { c.OTPSweepInterval = -time.Second }},
		{"smtp without credentials", func(c *Config) { c.Mail.Driver = MailSMTP }},
		{"resend without key", func(c *Config) { c.Mail.Driver = MailResend }},
		{"unknown mail driver", func(c *Config) { c.Mail.Driver = "pigeon" }},
		{"negative retries", func(c *Config) { c.Mail.Retries = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			errutil.AssertErrorCode(t, cfg.Validate(), "CONFIG_INVALID")
		})
	}

	t.Run("postgres with url", func(t *testing.T) {
		cfg := base
		cfg.DatabaseDriver = DriverPostgres
		cfg.DatabaseURL = "postgres://trapit@localhost/trapit"
		require.NoError(t, cfg.Validate())
	})
}

package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	MailSMTP   = "smtp"
	MailResend = "resend"
	MailLog    = "log"
)

type Config struct {
	Env                 string        `koanf:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        `koanf:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        `koanf:"log_format"`            // Log format (json, text) (default: json)
	Port                int           `koanf:"port"`                  // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration `koanf:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
	CORSAllowedOrigins  []string      `koanf:"cors_allowed_origins"`  // Allowed browser origins (default: *)

	DatabaseDriver string `koanf:"database_driver"` // sqlite or postgres (default: sqlite)
	DatabaseFile   string `koanf:"database_file"`   // SQLite file path (default: ./trapit.db)
	DatabaseURL    string `koanf:"database_url"`    // PostgreSQL connection string, required for postgres
	PepperFile     string `koanf:"pepper_file"`     // Password hashing pepper (default: ./pepper)

	OTPTTL           time.Duration `koanf:"otp_ttl"`            // Reset code lifetime (default: 5m)
	OTPSweepInterval time.Duration `koanf:"otp_sweep_interval"` // Expired code sweep interval, 0 disables (default: 0)
	OTPRetention     time.Duration `koanf:"otp_retention"`      // How long past expiry a code is kept before sweeping (default: 24h)
	ResetRequiresOTP bool          `koanf:"reset_requires_otp"` // Reset-password must present a valid code (default: true)

	Mail MailConfig `koanf:"mail"`
}

type MailConfig struct {
	// Driver is smtp, resend or log. Empty selects smtp when Username is
	// set and log otherwise.
	Driver       string        `koanf:"driver"`
	From         string        `koanf:"from"`
	SMTPHost     string        `koanf:"smtp_host"`
	SMTPPort     int           `koanf:"smtp_port"`
	Username     string        `koanf:"username"`
	Password     string        `koanf:"password"`
	ResendAPIKey string        `koanf:"resend_api_key"`
	Retries      int           `koanf:"retries"`
	RetryBase    time.Duration `koanf:"retry_base"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"port":               "port",
	"env":                "env",
	"log-level":          "log_level",
	"log-format":         "log_format",
	"database-driver":    "database_driver",
	"database-file":      "database_file",
	"database-url":       "database_url",
	"pepper-file":        "pepper_file",
	"otp-ttl":            "otp_ttl",
	"otp-sweep-interval": "otp_sweep_interval",
	"reset-requires-otp": "reset_requires_otp",
	"mail-driver":        "mail.driver",
}

// RegisterFlags adds the command-line overrides understood by LoadConfig.
// Only flags that are explicitly set take effect.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Int("port", 0, "HTTP server port")
	flags.String("env", "", "environment name (dev, staging, prod)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (json or text)")
	flags.String("database-driver", "", "database driver (sqlite or postgres)")
	flags.String("database-file", "", "SQLite database file")
	flags.String("database-url", "", "PostgreSQL connection string")
	flags.String("pepper-file", "", "password hashing pepper file")
	flags.Duration("otp-ttl", 0, "reset code lifetime")
	flags.Duration("otp-sweep-interval", 0, "expired reset code sweep interval (0 disables)")
	flags.Bool("reset-requires-otp", true, "require a valid reset code to reset a password")
	flags.String("mail-driver", "", "mail driver (smtp, resend or log)")
}

// LoadConfig builds the configuration from, in increasing precedence: a .env
// file in the working directory, the process environment, the YAML file at
// configFile and explicitly set flags. configFile and flags may be empty.
func LoadConfig(configFile string, flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, oops.Code("CONFIG_INVALID").With("operation", "load .env").Wrap(err)
	}

	cfg := configFromEnv()

	k := koanf.New(".")
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_INVALID").
				With("operation", "load config file").
				With("path", configFile).
				Wrap(err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, oops.Code("CONFIG_INVALID").With("operation", "load flags").Wrap(err)
		}
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, oops.Code("CONFIG_INVALID").With("operation", "decode config").Wrap(err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configFromEnv() Config {
	return Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		CORSAllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),

		DatabaseDriver: getEnvOrDefault("TRAPIT_DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("TRAPIT_DATABASE_FILE", "trapit.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		PepperFile:     getEnvOrDefault("TRAPIT_PEPPER_FILE", "pepper"),

		OTPTTL:           getEnvDurationOrDefault("OTP_TTL", 5*time.Minute),
		OTPSweepInterval: getEnvDurationOrDefault("OTP_SWEEP_INTERVAL", 0),
		OTPRetention:     getEnvDurationOrDefault("OTP_RETENTION", 24*time.Hour),
		ResetRequiresOTP: getEnvBoolOrDefault("RESET_REQUIRES_OTP", true),

		Mail: MailConfig{
			Driver:       os.Getenv("MAIL_DRIVER"),
			From:         os.Getenv("MAIL_FROM"),
			SMTPHost:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
			Username:     os.Getenv("EMAIL_USER"),
			Password:     os.Getenv("EMAIL_PASS"),
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			Retries:      getEnvIntOrDefault("MAIL_RETRIES", 2),
			RetryBase:    getEnvDurationOrDefault("MAIL_RETRY_BASE", 200*time.Millisecond),
		},
	}
}

func (c *Config) applyDefaults() {
	c.DatabaseDriver = strings.ToLower(c.DatabaseDriver)
	c.Mail.Driver = strings.ToLower(c.Mail.Driver)

	if c.Mail.Driver == "" {
		if c.Mail.Username != "" {
			c.Mail.Driver = MailSMTP
		} else {
			c.Mail.Driver = MailLog
		}
	}
	if c.Mail.From == "" {
		c.Mail.From = c.Mail.Username
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	invalid := oops.Code("CONFIG_INVALID")

	if c.Port <= 0 || c.Port > 65535 {
		return invalid.With("port", c.Port).Errorf("port must be between 1 and 65535")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return invalid.Errorf("log format must be 'json' or 'text', got %q", c.LogFormat)
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return invalid.Errorf("database file is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return invalid.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return invalid.Errorf("unknown database driver %q", c.DatabaseDriver)
	}

	if c.OTPTTL <= 0 {
		return invalid.Errorf("otp ttl must be positive, got %s", c.OTPTTL)
	}
	if c.OTPSweepInterval < 0 {
		return invalid.Errorf("otp sweep interval must not be negative, got %s", c.OTPSweepInterval)
	}

	switch c.Mail.Driver {
	case MailSMTP:
		if c.Mail.SMTPHost == "" || c.Mail.Username == "" || c.Mail.Password == "" {
			return invalid.Errorf("smtp mail driver needs SMTP_HOST, EMAIL_USER and EMAIL_PASS")
		}
	case MailResend:
		if c.Mail.ResendAPIKey == "" || c.Mail.From == "" {
			return invalid.Errorf("resend mail driver needs RESEND_API_KEY and MAIL_FROM")
		}
	case MailLog:
	default:
		return invalid.Errorf("unknown mail driver %q", c.Mail.Driver)
	}
	if c.Mail.Retries < 0 {
		return invalid.Errorf("mail retries must not be negative, got %d", c.Mail.Retries)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

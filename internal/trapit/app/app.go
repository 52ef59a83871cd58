package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"

	httpapi "github.com/trapit/trapit/internal/trapit/http"
	"github.com/trapit/trapit/internal/trapit/metrics"
	"github.com/trapit/trapit/internal/trapit/notify"
	"github.com/trapit/trapit/internal/trapit/service"
	"github.com/trapit/trapit/internal/trapit/store"
	"github.com/trapit/trapit/internal/trapit/store/drivers/postgres"
	"github.com/trapit/trapit/internal/trapit/store/drivers/sqlite"
	"github.com/trapit/trapit/pkg/cryptox"
	"github.com/trapit/trapit/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application encapsulates the TrapIT backend with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	accountService      *service.AccountService
	recoveryService     *service.RecoveryService
	trapService         *service.TrapService
	housekeepingService *service.HousekeepingService // nil when the sweep is disabled

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "trapit-backend",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, oops.Code("PEPPER_LOAD_FAILED").With("path", app.cfg.PepperFile).Wrap(err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.registry, app.metrics = metrics.NewRegistry()

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the application's HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("trapit backend starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
		"mail", app.cfg.Mail.Driver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down trapit backend...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("trapit backend stopped")
	return nil
}

// OpenStore connects to the configured database and applies migrations.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		st, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", cfg.DatabaseFile)
		st, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return st, nil
}

// NewNotifier builds the configured OTP delivery channel. Network channels
// retry transient failures.
func NewNotifier(cfg Config) (notify.Notifier, error) {
	var n notify.Notifier

	switch cfg.Mail.Driver {
	case MailSMTP:
		n = notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			TTL:      cfg.OTPTTL,
		})
	case MailResend:
		n = notify.NewResendNotifier(notify.ResendConfig{
			APIKey: cfg.Mail.ResendAPIKey,
			From:   cfg.Mail.From,
			TTL:    cfg.OTPTTL,
		})
	case MailLog:
		return notify.LogNotifier{}, nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}

	if cfg.Mail.Retries > 0 {
		n = notify.NewRetrying(n, uint64(cfg.Mail.Retries), cfg.Mail.RetryBase)
	}
	return n, nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(context.Background(), app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initServices() error {
	notifier, err := NewNotifier(app.cfg)
	if err != nil {
		return err
	}
	if app.cfg.Mail.Driver == MailLog {
		app.logger.Warn("reset codes are written to the log, not emailed")
	}

	hasher := cryptox.Hasher{}

	app.accountService = &service.AccountService{
		Store:   app.db,
		Hasher:  hasher,
		Metrics: app.metrics,
	}
	app.recoveryService = &service.RecoveryService{
		Store:              app.db,
		Hasher:             hasher,
		Notifier:           notifier,
		Metrics:            app.metrics,
		TTL:                app.cfg.OTPTTL,
		RequireOTPForReset: app.cfg.ResetRequiresOTP,
	}
	app.trapService = &service.TrapService{Store: app.db}

	if app.cfg.OTPSweepInterval > 0 {
		app.housekeepingService = service.NewHousekeepingService(
			app.db,
			app.logger,
			app.cfg.OTPSweepInterval,
			app.cfg.OTPRetention,
		)
		app.housekeepingService.Metrics = app.metrics
	}

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSAllowedOrigins,
	)

	router.AccountService = app.accountService
	router.RecoveryService = app.recoveryService
	router.TrapService = app.trapService
	router.Gatherer = app.registry
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

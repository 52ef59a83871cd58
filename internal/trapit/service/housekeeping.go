package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/trapit/trapit/internal/trapit/metrics"
	"github.com/trapit/trapit/internal/trapit/store"
)

// HousekeepingService periodically removes password reset challenges that
// expired more than Retention ago. Without it, expired rows stay until the
// next SendOTP for that email overwrites them.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Interval  time.Duration
	Retention time.Duration

	// Now is overridable for tests.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention < 0 {
		retention = 0
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		Now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		slog.Duration("interval", s.Interval),
		slog.Duration("retention", s.Retention),
	)
}

// Stop blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes challenges whose expiry is older than the retention window
// and returns how many were removed.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	cutoff := s.Now().Add(-s.Retention)

	n, err := s.Store.OTPs().DeleteExpiredOTPs(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete expired otps", slog.Any("error", err))
		return 0
	}

	s.Metrics.RecordOTPSwept(n)
	s.Logger.Debug("housekeeping cleanup completed", slog.Int64("deleted_otps", n))
	return n
}

package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/trapit/trapit/pkg/slogx"
)

// Retrying retries transient delivery failures with exponential backoff.
// API errors that are not temporary are returned immediately.
type Retrying struct {
	next       Notifier
	maxRetries uint64
	base       time.Duration
}

func NewRetrying(next Notifier, maxRetries uint64, base time.Duration) *Retrying {
	if base <= 0 {
		base = 200 * time.Millisecond
	}
	return &Retrying{next: next, maxRetries: maxRetries, base: base}
}

func (r *Retrying) SendOTP(ctx context.Context, email, code string) error {
	b := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.base))

	attempt := 0
	return retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		err := r.next.SendOTP(ctx, email, code)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Temporary() {
			return err
		}

		slogx.FromContext(ctx).Warn("otp delivery attempt failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		return retry.RetryableError(err)
	})
}

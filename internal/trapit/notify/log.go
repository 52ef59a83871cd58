package notify

import (
	"context"
	"log/slog"

	"github.com/trapit/trapit/pkg/slogx"
)

// LogNotifier writes reset codes to the request logger instead of sending
// mail. For local development only.
type LogNotifier struct{}

func (LogNotifier) SendOTP(ctx context.Context, email, code string) error {
	slogx.FromContext(ctx).Warn("otp delivery disabled, logging code",
		slog.String("to", email),
		slog.String("otp", code),
	)
	return nil
}

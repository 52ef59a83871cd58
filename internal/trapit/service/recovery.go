package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/domain"
	"github.com/trapit/trapit/internal/trapit/metrics"
	"github.com/trapit/trapit/internal/trapit/store"
	"github.com/trapit/trapit/pkg/cryptox"
	"github.com/trapit/trapit/pkg/slogx"
)

const (
	OTPDigits  = 6
	DefaultTTL = 5 * time.Minute
)

// RecoveryService runs the forgot-password flow: send a code, verify it,
// reset the password. No state is held between calls; the single live
// challenge per email lives in the store.
type RecoveryService struct {
	Store    store.Store
	Hasher   PasswordHasher
	Notifier Notifier
	Metrics  *metrics.Metrics

	// TTL is how long an issued code stays valid. Zero means DefaultTTL.
	TTL time.Duration

	// RequireOTPForReset makes ResetPassword re-run the VerifyOTP checks
	// before changing the password.
	RequireOTPForReset bool

	// Now and GenerateCode are overridable for tests.
	Now          func() time.Time
	GenerateCode func() (string, error)
}

func (s *RecoveryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RecoveryService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTTL
}

func (s *RecoveryService) generateCode() (string, error) {
	if s.GenerateCode != nil {
		return s.GenerateCode()
	}
	return cryptox.GenerateNumericCode(OTPDigits)
}

// SendOTP issues a fresh code for email, replacing any earlier one, and
// delivers it. The code is stored before delivery is attempted; when
// delivery fails the error wraps ErrDelivery and the stored code stays valid.
func (s *RecoveryService) SendOTP(ctx context.Context, email string) (err error) {
	log := slogx.FromContext(ctx)
	defer func() { s.Metrics.RecordAuth("send_otp", outcome(err)) }()

	if blank(email) {
		return ErrValidation
	}

	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return oops.Code("ACCOUNT_GET_FAILED").With("operation", "send otp").Wrap(err)
	}

	code, err := s.generateCode()
	if err != nil {
		return oops.Code("OTP_GENERATE_FAILED").With("operation", "send otp").Wrap(err)
	}

	challenge := domain.OTPChallenge{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl()),
	}
	if err := s.Store.OTPs().UpsertOTP(ctx, challenge); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return oops.Code("OTP_SAVE_FAILED").With("operation", "send otp").Wrap(errors.Join(ErrChallengeNotSaved, err))
	}
	s.Metrics.RecordOTPIssued()

	if err := s.Notifier.SendOTP(ctx, email, code); err != nil {
		s.Metrics.RecordOTPDeliveryFailure()
		log.Error("failed to deliver otp", slog.String("email", email), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	log.Info("otp issued", slog.String("email", email), slog.Time("expires_at", challenge.ExpiresAt))
	return nil
}

// VerifyOTP checks code against the stored challenge without consuming it.
// Checks run in order: presence, code match, expiry.
func (s *RecoveryService) VerifyOTP(ctx context.Context, email, code string) (err error) {
	defer func() { s.Metrics.RecordAuth("verify_otp", outcome(err)) }()

	if blank(email) || code == "" {
		return ErrValidation
	}
	return s.checkChallenge(ctx, email, code)
}

func (s *RecoveryService) checkChallenge(ctx context.Context, email, code string) error {
	challenge, err := s.Store.OTPs().GetOTPByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrChallengeNotFound
		}
		return oops.Code("OTP_GET_FAILED").With("operation", "verify otp").Wrap(err)
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(code)) != 1 {
		return ErrInvalidCode
	}
	if challenge.IsExpired(s.now()) {
		return ErrCodeExpired
	}
	return nil
}

// ResetPassword sets a new password for email and then discards the
// challenge. With RequireOTPForReset the code must pass the same checks as
// VerifyOTP; otherwise code is ignored.
func (s *RecoveryService) ResetPassword(ctx context.Context, email, code, newPassword string) (err error) {
	log := slogx.FromContext(ctx)
	defer func() { s.Metrics.RecordAuth("reset_password", outcome(err)) }()

	if blank(email) || newPassword == "" {
		return ErrValidation
	}

	if s.RequireOTPForReset {
		if code == "" {
			return ErrValidation
		}
		if err := s.checkChallenge(ctx, email, code); err != nil {
			return err
		}
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return oops.Code("PASSWORD_HASH_FAILED").With("operation", "reset password").Wrap(err)
	}

	n, err := s.Store.Accounts().UpdatePasswordHash(ctx, email, hash)
	if err != nil {
		return oops.Code("ACCOUNT_UPDATE_FAILED").With("operation", "reset password").Wrap(errors.Join(ErrPasswordNotUpdated, err))
	}
	if n == 0 {
		return ErrPasswordNotUpdated
	}

	if err := s.Store.OTPs().DeleteOTP(ctx, email); err != nil {
		log.Warn("failed to discard otp after reset", slog.String("email", email), slog.Any("error", err))
	}

	log.Info("password reset", slog.String("email", email))
	return nil
}

package postgres

import (
	"context"
	"time"

	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/domain"
)

type otpsRepo struct {
	pool pool
}

func (r *otpsRepo) UpsertOTP(ctx context.Context, c domain.OTPChallenge) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO otps (email, otp, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET otp = EXCLUDED.otp, expires_at = EXCLUDED.expires_at
	`, c.Email, c.Code, c.ExpiresAt)
	if err != nil {
		return wrapWrite("OTP_UPSERT_FAILED", "upsert otp", err)
	}
	return nil
}

func (r *otpsRepo) GetOTPByEmail(ctx context.Context, email string) (domain.OTPChallenge, error) {
	var c domain.OTPChallenge
	err := r.pool.QueryRow(ctx, `
		SELECT email, otp, expires_at
		FROM otps
		WHERE email = $1
	`, email).Scan(&c.Email, &c.Code, &c.ExpiresAt)
	if err != nil {
		return domain.OTPChallenge{}, wrapRead("OTP_GET_FAILED", "select otp", err)
	}
	return c, nil
}

func (r *otpsRepo) DeleteOTP(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM otps WHERE email = $1`, email)
	if err != nil {
		return oops.Code("OTP_DELETE_FAILED").With("operation", "delete otp").Wrap(err)
	}
	// No ErrNotFound if nothing was deleted - that's a valid state
	return nil
}

func (r *otpsRepo) DeleteExpiredOTPs(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM otps WHERE expires_at <= $1`, before)
	if err != nil {
		return 0, oops.Code("OTP_DELETE_EXPIRED_FAILED").With("operation", "delete expired otps").Wrap(err)
	}
	return tag.RowsAffected(), nil
}

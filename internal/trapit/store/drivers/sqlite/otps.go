package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/trapit/trapit/internal/trapit/domain"
)

// otpsRepo stores expires_at as unix milliseconds, the format the previous
// backend used for the same column.
type otpsRepo struct {
	db *sql.DB
}

func (r *otpsRepo) UpsertOTP(ctx context.Context, c domain.OTPChallenge) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO otps (email, otp, expires_at) VALUES (?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET otp = excluded.otp, expires_at = excluded.expires_at`,
		c.Email, c.Code, c.ExpiresAt.UnixMilli(),
	)
	return mapConstraint(err)
}

func (r *otpsRepo) GetOTPByEmail(ctx context.Context, email string) (domain.OTPChallenge, error) {
	var (
		c         domain.OTPChallenge
		expiresMs int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT email, otp, expires_at FROM otps WHERE email = ?`, email,
	).Scan(&c.Email, &c.Code, &expiresMs)
	if err != nil {
		return domain.OTPChallenge{}, mapNotFound(err)
	}
	c.ExpiresAt = time.UnixMilli(expiresMs).UTC()
	return c, nil
}

func (r *otpsRepo) DeleteOTP(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otps WHERE email = ?`, email)
	return err
}

func (r *otpsRepo) DeleteExpiredOTPs(ctx context.Context, before time.Time) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx,
		`DELETE FROM otps WHERE expires_at <= ?`, before.UnixMilli()))
}

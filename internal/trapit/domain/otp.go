package domain

import "time"

// OTPChallenge is the single live password-reset code issued for an email.
// A newer challenge replaces the previous one.
type OTPChallenge struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

// IsExpired reports whether the challenge is no longer valid at now. The
// expiry instant itself counts as expired.
func (c OTPChallenge) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

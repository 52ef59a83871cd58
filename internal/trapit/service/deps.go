package service

import "context"

// PasswordHasher turns plaintext passwords into slow salted digests.
// Verify never fails on a malformed digest; it reports false instead.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	// NeedsUpgrade reports whether a digest should be replaced with one
	// produced by Hash.
	NeedsUpgrade(hash string) bool
}

// Notifier delivers a reset code to the account's inbox.
type Notifier interface {
	SendOTP(ctx context.Context, email, code string) error
}

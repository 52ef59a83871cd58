package domain

import "time"

// Account is a user's persistent identity, keyed by the exact email string
// given at registration.
type Account struct {
	Email        string
	FullName     string
	PasswordHash string // argon2id PHC string, or bcrypt for accounts imported from the old backend
	CreatedAt    time.Time
}

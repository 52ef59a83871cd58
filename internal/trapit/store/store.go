package store

import (
	"context"
	"errors"
	"time"

	"github.com/trapit/trapit/internal/trapit/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes one sub-repository per table.
//
// Every flow in the service layer mutates at most one row, so there is no
// transaction API; atomicity comes from single-statement writes backed by
// primary key and foreign key constraints.
type Store interface {
	Accounts() Accounts
	OTPs() OTPs
	Traps() Traps

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// CreateAccount inserts a new account. The primary key on email is the only
	// uniqueness gate: a duplicate returns ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error)

	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// UpdatePasswordHash returns the number of rows changed; 0 means no such email.
	UpdatePasswordHash(ctx context.Context, email, hash string) (int64, error)

	// UpdateFullName returns the number of rows changed; 0 means no such email.
	UpdateFullName(ctx context.Context, email, fullName string) (int64, error)

	// ListAccounts returns every account ordered by creation time.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type OTPs interface {
	// UpsertOTP replaces any existing challenge for the email in one statement.
	// Returns ErrNotFound if the account does not exist.
	UpsertOTP(ctx context.Context, c domain.OTPChallenge) error

	GetOTPByEmail(ctx context.Context, email string) (domain.OTPChallenge, error)

	// DeleteOTP is idempotent.
	DeleteOTP(ctx context.Context, email string) error

	// DeleteExpiredOTPs removes challenges that expired before the cutoff.
	DeleteExpiredOTPs(ctx context.Context, before time.Time) (int64, error)
}

type Traps interface {
	// CreateTrap returns ErrAlreadyExists for a taken trap ID and ErrNotFound
	// when the owning account does not exist.
	CreateTrap(ctx context.Context, t domain.Trap) (domain.Trap, error)

	ListTrapsByEmail(ctx context.Context, email string) ([]domain.Trap, error)

	UpdateTrapStatus(ctx context.Context, trapID string, status domain.TrapStatus) (int64, error)

	DeleteTrap(ctx context.Context, trapID string) (int64, error)
}

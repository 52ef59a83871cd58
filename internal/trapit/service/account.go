package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/domain"
	"github.com/trapit/trapit/internal/trapit/metrics"
	"github.com/trapit/trapit/internal/trapit/store"
	"github.com/trapit/trapit/pkg/slogx"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown email, so both failure paths spend the same hashing time.
const dummyPassword = "trapit-login-timing-equalizer"

// fallbackDummyHash is a well-formed argon2id digest with the current
// parameters, used when hashing dummyPassword fails.
const fallbackDummyHash = "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$dHJhcGl0LWxvZ2luLXRpbWluZy1lcXVhbGl6ZXIhISE"

type AccountService struct {
	Store   store.Store
	Hasher  PasswordHasher
	Metrics *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register creates an account. The store's primary key on email is the only
// uniqueness check, so concurrent registrations for one email cannot both
// succeed.
func (s *AccountService) Register(ctx context.Context, email, fullName, password string) (err error) {
	log := slogx.FromContext(ctx)
	defer func() { s.Metrics.RecordAuth("register", outcome(err)) }()

	if blank(email) || password == "" {
		return ErrValidation
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return oops.Code("PASSWORD_HASH_FAILED").With("operation", "register").Wrap(err)
	}

	_, err = s.Store.Accounts().CreateAccount(ctx, domain.Account{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration for existing account", slog.String("email", email))
			return ErrAccountExists
		}
		return oops.Code("ACCOUNT_CREATE_FAILED").With("operation", "register").Wrap(err)
	}

	log.Info("account registered", slog.String("email", email))
	return nil
}

// Login checks a password and returns the account. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (acct domain.Account, err error) {
	log := slogx.FromContext(ctx)
	defer func() { s.Metrics.RecordAuth("login", outcome(err)) }()

	if blank(email) || password == "" {
		return domain.Account{}, ErrValidation
	}

	acct, err = s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.Verify(password, s.dummy(ctx))
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, oops.Code("ACCOUNT_GET_FAILED").With("operation", "login").Wrap(err)
	}

	if !s.Hasher.Verify(password, acct.PasswordHash) {
		log.Info("login with wrong password", slog.String("email", email))
		return domain.Account{}, ErrInvalidCredentials
	}

	if s.Hasher.NeedsUpgrade(acct.PasswordHash) {
		s.upgradeHash(ctx, email, password)
	}

	acct.PasswordHash = ""
	return acct, nil
}

// upgradeHash re-hashes a legacy digest after a successful login. Failure
// leaves the old digest in place, which still verifies.
func (s *AccountService) upgradeHash(ctx context.Context, email, password string) {
	log := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Warn("failed to rehash legacy password", slog.Any("error", err))
		return
	}
	if _, err := s.Store.Accounts().UpdatePasswordHash(ctx, email, hash); err != nil {
		log.Warn("failed to store upgraded password hash", slog.String("email", email), slog.Any("error", err))
		return
	}
	log.Info("upgraded legacy password hash", slog.String("email", email))
}

func (s *AccountService) dummy(ctx context.Context) string {
	s.dummyOnce.Do(func() {
		hash, err := s.Hasher.Hash(dummyPassword)
		if err != nil || hash == "" {
			slogx.FromContext(ctx).Error("failed to hash login dummy password, using fallback digest",
				slog.Any("error", err))
			hash = fallbackDummyHash
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// UpdateName replaces the account's display name and returns it.
func (s *AccountService) UpdateName(ctx context.Context, email, fullName string) (name string, err error) {
	defer func() { s.Metrics.RecordAuth("update_name", outcome(err)) }()

	if blank(email) || blank(fullName) {
		return "", ErrValidation
	}

	n, err := s.Store.Accounts().UpdateFullName(ctx, email, fullName)
	if err != nil {
		return "", oops.Code("ACCOUNT_UPDATE_FAILED").With("operation", "update name").Wrap(err)
	}
	if n == 0 {
		return "", ErrAccountNotFound
	}
	return fullName, nil
}

// ChangePassword requires the current password before storing a new one.
func (s *AccountService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) (err error) {
	log := slogx.FromContext(ctx)
	defer func() { s.Metrics.RecordAuth("change_password", outcome(err)) }()

	if blank(email) || currentPassword == "" || newPassword == "" {
		return ErrValidation
	}

	acct, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return oops.Code("ACCOUNT_GET_FAILED").With("operation", "change password").Wrap(err)
	}

	if !s.Hasher.Verify(currentPassword, acct.PasswordHash) {
		log.Info("change password with wrong current password", slog.String("email", email))
		return ErrWrongPassword
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return oops.Code("PASSWORD_HASH_FAILED").With("operation", "change password").Wrap(err)
	}

	n, err := s.Store.Accounts().UpdatePasswordHash(ctx, email, hash)
	if err != nil {
		return oops.Code("ACCOUNT_UPDATE_FAILED").With("operation", "change password").Wrap(err)
	}
	if n == 0 {
		return ErrAccountNotFound
	}

	log.Info("password changed", slog.String("email", email))
	return nil
}

// ListAccounts returns every account without password digests.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accts, err := s.Store.Accounts().ListAccounts(ctx)
	if err != nil {
		return nil, oops.Code("ACCOUNT_LIST_FAILED").With("operation", "list accounts").Wrap(err)
	}
	for i := range accts {
		accts[i].PasswordHash = ""
	}
	return accts, nil
}

// Package postgres is the PostgreSQL store driver, for deployments that run
// more than one API instance against a shared database.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/store"
)

// pool is the subset of *pgxpool.Pool the repositories use. pgxmock's pool
// satisfies it in unit tests.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type Store struct {
	pool pool
	dsn  string
}

// NewStore connects to the database at dsn (postgres:// URL or key/value
// connection string).
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "create pool").Wrap(err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "ping").Wrap(err)
	}
	return newStore(p, dsn), nil
}

func newStore(p pool, dsn string) *Store {
	return &Store{pool: p, dsn: dsn}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{pool: s.pool} }
func (s *Store) OTPs() store.OTPs         { return &otpsRepo{pool: s.pool} }
func (s *Store) Traps() store.Traps       { return &trapsRepo{pool: s.pool} }

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapWrite maps constraint violations onto the store sentinels and tags
// everything with an oops code.
func wrapWrite(code, operation string, err error) error {
	switch pgCode(err) {
	case pgerrcode.UniqueViolation:
		return oops.Code(code).With("operation", operation).Wrap(errors.Join(store.ErrAlreadyExists, err))
	case pgerrcode.ForeignKeyViolation:
		return oops.Code(code).With("operation", operation).Wrap(errors.Join(store.ErrNotFound, err))
	}
	return oops.Code(code).With("operation", operation).Wrap(err)
}

func wrapRead(code, operation string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return oops.Code(code).With("operation", operation).Wrap(store.ErrNotFound)
	}
	return oops.Code(code).With("operation", operation).Wrap(err)
}

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/domain"
)

type accountsRepo struct {
	pool pool
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, a.Email, a.FullName, a.PasswordHash, a.CreatedAt)
	if err != nil {
		return domain.Account{}, wrapWrite("ACCOUNT_CREATE_FAILED", "insert user", err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT email, full_name, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, wrapRead("ACCOUNT_GET_FAILED", "select user", err)
	}
	return a, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, email, hash string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE email = $2`, hash, email)
	if err != nil {
		return 0, oops.Code("ACCOUNT_UPDATE_FAILED").With("operation", "update password_hash").Wrap(err)
	}
	return tag.RowsAffected(), nil
}

func (r *accountsRepo) UpdateFullName(ctx context.Context, email, fullName string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET full_name = $1 WHERE email = $2`, fullName, email)
	if err != nil {
		return 0, oops.Code("ACCOUNT_UPDATE_FAILED").With("operation", "update full_name").Wrap(err)
	}
	return tag.RowsAffected(), nil
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT email, full_name, password_hash, created_at
		FROM users
		ORDER BY created_at, email
	`)
	if err != nil {
		return nil, oops.Code("ACCOUNT_LIST_FAILED").With("operation", "select users").Wrap(err)
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, oops.Code("ACCOUNT_SCAN_FAILED").With("operation", "scan user").Wrap(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ACCOUNT_LIST_FAILED").With("operation", "iterate users").Wrap(err)
	}
	return out, nil
}

// scanAccount propagates pgx.ErrNoRows unchanged for callers to map.
func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.Email, &a.FullName, &a.PasswordHash, &a.CreatedAt); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

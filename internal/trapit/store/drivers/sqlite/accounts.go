package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/trapit/trapit/internal/trapit/domain"
)

type accountsRepo struct {
	db *sql.DB
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, full_name, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		a.Email, a.FullName, a.PasswordHash, a.CreatedAt,
	)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT email, full_name, password_hash, created_at FROM users WHERE email = ?`,
		email,
	).Scan(&a.Email, &a.FullName, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, email, hash string) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE email = ?`, hash, email))
}

func (r *accountsRepo) UpdateFullName(ctx context.Context, email, fullName string) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx,
		`UPDATE users SET full_name = ? WHERE email = ?`, fullName, email))
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT email, full_name, password_hash, created_at FROM users ORDER BY created_at, email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.Email, &a.FullName, &a.PasswordHash, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

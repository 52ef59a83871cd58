package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/trapit/trapit/internal/trapit/domain"
)

type trapsRepo struct {
	db *sql.DB
}

func (r *trapsRepo) CreateTrap(ctx context.Context, t domain.Trap) (domain.Trap, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO traps (trap_id, trap_name, status, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Name, string(t.Status), t.Email, t.CreatedAt,
	)
	if err != nil {
		return domain.Trap{}, mapConstraint(err)
	}
	return t, nil
}

func (r *trapsRepo) ListTrapsByEmail(ctx context.Context, email string) ([]domain.Trap, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT trap_id, trap_name, status, email, created_at
		FROM traps WHERE email = ? ORDER BY created_at, trap_id`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Trap{}
	for rows.Next() {
		var (
			t      domain.Trap
			status string
		)
		if err := rows.Scan(&t.ID, &t.Name, &status, &t.Email, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Status = domain.TrapStatus(status)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *trapsRepo) UpdateTrapStatus(ctx context.Context, trapID string, status domain.TrapStatus) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx,
		`UPDATE traps SET status = ? WHERE trap_id = ?`, string(status), trapID))
}

func (r *trapsRepo) DeleteTrap(ctx context.Context, trapID string) (int64, error) {
	return rowsAffected(r.db.ExecContext(ctx, `DELETE FROM traps WHERE trap_id = ?`, trapID))
}

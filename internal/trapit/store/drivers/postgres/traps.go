package postgres

import (
	"context"
	"time"

	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/domain"
)

type trapsRepo struct {
	pool pool
}

func (r *trapsRepo) CreateTrap(ctx context.Context, t domain.Trap) (domain.Trap, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO traps (trap_id, trap_name, status, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.Name, string(t.Status), t.Email, t.CreatedAt)
	if err != nil {
		return domain.Trap{}, wrapWrite("TRAP_CREATE_FAILED", "insert trap", err)
	}
	return t, nil
}

func (r *trapsRepo) ListTrapsByEmail(ctx context.Context, email string) ([]domain.Trap, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT trap_id, trap_name, status, email, created_at
		FROM traps
		WHERE email = $1
		ORDER BY created_at, trap_id
	`, email)
	if err != nil {
		return nil, oops.Code("TRAP_LIST_FAILED").With("operation", "select traps").Wrap(err)
	}
	defer rows.Close()

	out := []domain.Trap{}
	for rows.Next() {
		var (
			t      domain.Trap
			status string
		)
		if err := rows.Scan(&t.ID, &t.Name, &status, &t.Email, &t.CreatedAt); err != nil {
			return nil, oops.Code("TRAP_SCAN_FAILED").With("operation", "scan trap").Wrap(err)
		}
		t.Status = domain.TrapStatus(status)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("TRAP_LIST_FAILED").With("operation", "iterate traps").Wrap(err)
	}
	return out, nil
}

func (r *trapsRepo) UpdateTrapStatus(ctx context.Context, trapID string, status domain.TrapStatus) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE traps SET status = $1 WHERE trap_id = $2`, string(status), trapID)
	if err != nil {
		return 0, oops.Code("TRAP_UPDATE_FAILED").With("operation", "update trap status").Wrap(err)
	}
	return tag.RowsAffected(), nil
}

func (r *trapsRepo) DeleteTrap(ctx context.Context, trapID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM traps WHERE trap_id = $1`, trapID)
	if err != nil {
		return 0, oops.Code("TRAP_DELETE_FAILED").With("operation", "delete trap").Wrap(err)
	}
	return tag.RowsAffected(), nil
}

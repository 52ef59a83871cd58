package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"

	"github.com/trapit/trapit/internal/trapit/domain"
	"github.com/trapit/trapit/internal/trapit/store"
	"github.com/trapit/trapit/pkg/slogx"
)

type TrapService struct {
	Store store.Store
}

// CreateTrap registers a trap for an existing account. New traps start
// inactive and take DefaultTrapName when name is empty.
func (s *TrapService) CreateTrap(ctx context.Context, email, trapID, name string) (domain.Trap, error) {
	if blank(email) || blank(trapID) {
		return domain.Trap{}, ErrValidation
	}
	if blank(name) {
		name = domain.DefaultTrapName
	}

	trap, err := s.Store.Traps().CreateTrap(ctx, domain.Trap{
		ID:     trapID,
		Name:   name,
		Status: domain.TrapStatusInactive,
		Email:  email,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Trap{}, ErrTrapExists
		case errors.Is(err, store.ErrNotFound):
			return domain.Trap{}, ErrAccountNotFound
		}
		return domain.Trap{}, oops.Code("TRAP_CREATE_FAILED").With("operation", "create trap").Wrap(err)
	}

	slogx.FromContext(ctx).Info("trap registered",
		slog.String("trap_id", trapID),
		slog.String("email", email),
	)
	return trap, nil
}

// ListTraps returns the traps owned by email. An unknown email has no traps.
func (s *TrapService) ListTraps(ctx context.Context, email string) ([]domain.Trap, error) {
	if blank(email) {
		return nil, ErrValidation
	}
	traps, err := s.Store.Traps().ListTrapsByEmail(ctx, email)
	if err != nil {
		return nil, oops.Code("TRAP_LIST_FAILED").With("operation", "list traps").Wrap(err)
	}
	return traps, nil
}

func (s *TrapService) UpdateStatus(ctx context.Context, trapID, status string) error {
	if blank(trapID) || status == "" {
		return ErrValidation
	}
	st, err := domain.ParseTrapStatus(status)
	if err != nil {
		return ErrInvalidTrapStatus
	}

	n, err := s.Store.Traps().UpdateTrapStatus(ctx, trapID, st)
	if err != nil {
		return oops.Code("TRAP_UPDATE_FAILED").With("operation", "update trap status").Wrap(err)
	}
	if n == 0 {
		return ErrTrapNotFound
	}
	return nil
}

func (s *TrapService) DeleteTrap(ctx context.Context, trapID string) error {
	if blank(trapID) {
		return ErrValidation
	}
	n, err := s.Store.Traps().DeleteTrap(ctx, trapID)
	if err != nil {
		return oops.Code("TRAP_DELETE_FAILED").With("operation", "delete trap").Wrap(err)
	}
	if n == 0 {
		return ErrTrapNotFound
	}
	return nil
}

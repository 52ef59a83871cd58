package domain

import (
	"fmt"
	"time"
)

type TrapStatus string

const (
	TrapStatusActive   TrapStatus = "active"
	TrapStatusInactive TrapStatus = "inactive"
)

// DefaultTrapName is used when a trap is registered without a name.
const DefaultTrapName = "Backyard Trap"

// ParseTrapStatus validates a client supplied status string.
func ParseTrapStatus(s string) (TrapStatus, error) {
	switch TrapStatus(s) {
	case TrapStatusActive, TrapStatusInactive:
		return TrapStatus(s), nil
	default:
		return "", fmt.Errorf("unknown trap status %q", s)
	}
}

type Trap struct {
	ID        string
	Name      string
	Status    TrapStatus
	Email     string // owning account
	CreatedAt time.Time
}

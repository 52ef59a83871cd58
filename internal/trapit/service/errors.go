package service

import (
	"errors"

	"github.com/trapit/trapit/internal/trapit/metrics"
)

var (
	ErrValidation         = errors.New("missing or malformed input")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")

	ErrChallengeNotFound  = errors.New("otp not found")
	ErrInvalidCode        = errors.New("invalid otp")
	ErrCodeExpired        = errors.New("otp expired")
	ErrChallengeNotSaved  = errors.New("otp could not be saved")
	ErrDelivery           = errors.New("otp delivery failed")
	ErrPasswordNotUpdated = errors.New("password was not updated")

	ErrTrapExists        = errors.New("trap already exists")
	ErrTrapNotFound      = errors.New("trap not found")
	ErrInvalidTrapStatus = errors.New("invalid trap status")
)

// rejections are client-caused outcomes. Anything else is an infrastructure
// failure.
var rejections = []error{
	ErrValidation,
	ErrAccountExists,
	ErrAccountNotFound,
	ErrInvalidCredentials,
	ErrWrongPassword,
	ErrChallengeNotFound,
	ErrInvalidCode,
	ErrCodeExpired,
	ErrTrapExists,
	ErrTrapNotFound,
	ErrInvalidTrapStatus,
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	for _, r := range rejections {
		if errors.Is(err, r) {
			return metrics.OutcomeRejected
		}
	}
	return metrics.OutcomeError
}

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUserNotFound      = errors.New("user not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrAmountTooLarge    = errors.New("amount exceeds the supported maximum")
	ErrInvalidRate       = errors.New("rate is out of range")
	ErrInvalidDeadline   = errors.New("deadline year is out of range")
	ErrDerivedTarget     = errors.New("target is derived from expenses and cannot be set")
)

// Validation constants
const (
	MaxNameLength   = 255
	MinRatePercent  = -100
	MaxRatePercent  = 100
	MinDeadlineYear = 2000
	MaxDeadlineYear = 2200
)

// MaxAmount is the first amount that no longer fits NUMERIC(15,2)
var MaxAmount = decimal.New(1, 13)

// ValidateAmount checks that an amount is non-negative and storable
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	if d.Round(2).GreaterThanOrEqual(MaxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

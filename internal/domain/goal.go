package domain

import (
	"strings"

	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/shopspring/decimal"
)

// Goal ids with special handling
const (
	GoalEmergencyFund = planner.GoalEmergencyFund
	GoalRetirement    = planner.GoalRetirement
)

// Goal is one savings objective of a plan
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	DeadlineYear  int             `json:"deadlineYear"`
}

// GoalUpdate holds the user-editable fields of a goal; nil fields are left as is
type GoalUpdate struct {
	Name         *string
	TargetAmount *decimal.Decimal
	DeadlineYear *int
}

// Validate checks a goal's fields
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrNameRequired
	}
	if len(g.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if err := ValidateAmount(g.TargetAmount); err != nil {
		return err
	}
	if err := ValidateAmount(g.CurrentAmount); err != nil {
		return err
	}
	if g.DeadlineYear != 0 && (g.DeadlineYear < MinDeadlineYear || g.DeadlineYear > MaxDeadlineYear) {
		return ErrInvalidDeadline
	}
	return nil
}

// Planner converts the goal into the engine's representation
func (g Goal) Planner() planner.Goal {
	return planner.Goal{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		DeadlineYear:  g.DeadlineYear,
	}
}

// PredefinedGoals is the catalog every new plan starts from.
// The emergency fund target is derived from expenses, not set here.
var PredefinedGoals = []Goal{
	{ID: GoalEmergencyFund, Name: "Emergency Fund", TargetAmount: decimal.Zero, DeadlineYear: 2025},
	{ID: GoalRetirement, Name: "Retirement", TargetAmount: decimal.NewFromInt(30000000), DeadlineYear: 2053},
	{ID: "child_education", Name: "Child Education", TargetAmount: decimal.NewFromInt(5000000), DeadlineYear: 2043},
	{ID: "home_down_payment", Name: "Home Down Payment", TargetAmount: decimal.NewFromInt(2000000), DeadlineYear: 2030},
	{ID: "car_purchase", Name: "Car Purchase", TargetAmount: decimal.NewFromInt(1200000), DeadlineYear: 2028},
	{ID: "vacation_fund", Name: "Vacation Fund", TargetAmount: decimal.NewFromInt(300000), DeadlineYear: 2026},
	{ID: "wedding_fund", Name: "Wedding Fund", TargetAmount: decimal.NewFromInt(2500000), DeadlineYear: 2032},
	{ID: "wealth_building", Name: "Wealth Building", TargetAmount: decimal.NewFromInt(10000000), DeadlineYear: 2040},
}

package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPlan returns the plan a new workspace starts with
func DefaultPlan(workspaceID int32) *Plan {
	goals := make([]Goal, len(PredefinedGoals))
	for i, g := range PredefinedGoals {
		g.CurrentAmount = decimal.Zero
		goals[i] = g
	}

	plan := &Plan{
		WorkspaceID: workspaceID,
		IncomeSources: []IncomeSource{
			{ID: uuid.New(), Name: "Primary Job", Amount: decimal.NewFromInt(50000)},
		},
		IncomeGrowthRate:     decimal.NewFromInt(10),
		InvestmentReturnRate: decimal.NewFromInt(8),
		MonthlyExpenses: MonthlyExpenses{
			General:    decimal.NewFromInt(20000),
			Education:  decimal.Zero,
			Healthcare: decimal.NewFromInt(2000),
			Food:       decimal.NewFromInt(8000),
		},
		Goals: goals,
	}

	plan.RecalculateIncome()
	plan.ApplyEmergencyFundTarget()
	return plan
}

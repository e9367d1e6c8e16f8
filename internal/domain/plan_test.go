package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan(7)

	if plan.WorkspaceID != 7 {
		t.Errorf("Expected workspace 7, got %d", plan.WorkspaceID)
	}
	if !plan.MonthlyIncome.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected monthly income 50000, got %s", plan.MonthlyIncome)
	}
	if len(plan.Goals) != len(PredefinedGoals) {
		t.Fatalf("Expected %d goals, got %d", len(PredefinedGoals), len(plan.Goals))
	}

	idx := plan.FindGoal(GoalEmergencyFund)
	if idx < 0 {
		t.Fatal("Expected emergency fund goal")
	}
	// 6 x (20000 + 0 + 2000 + 8000)
	if !plan.Goals[idx].TargetAmount.Equal(decimal.NewFromInt(180000)) {
		t.Errorf("Expected emergency target 180000, got %s", plan.Goals[idx].TargetAmount)
	}
	if err := plan.Validate(); err != nil {
		t.Errorf("Expected default plan to be valid, got %v", err)
	}
}

func TestDefaultPlan_DoesNotShareCatalog(t *testing.T) {
	plan := DefaultPlan(1)
	plan.Goals[1].CurrentAmount = decimal.NewFromInt(999)

	if !PredefinedGoals[1].CurrentAmount.IsZero() {
		t.Error("Expected catalog to be unaffected by plan edits")
	}
}

func TestRecalculateIncome(t *testing.T) {
	plan := &Plan{
		MonthlyIncome: decimal.NewFromInt(1),
		IncomeSources: []IncomeSource{
			{ID: uuid.New(), Name: "Salary", Amount: decimal.RequireFromString("42000.50")},
			{ID: uuid.New(), Name: "Rent", Amount: decimal.NewFromInt(8000)},
		},
	}

	plan.RecalculateIncome()

	if !plan.MonthlyIncome.Equal(decimal.RequireFromString("50000.50")) {
		t.Errorf("Expected 50000.50, got %s", plan.MonthlyIncome)
	}
}

func TestNormalize_LegacyPlanWithoutSources(t *testing.T) {
	plan := &Plan{MonthlyIncome: decimal.NewFromInt(35000)}

	plan.Normalize()

	if len(plan.IncomeSources) != 1 {
		t.Fatalf("Expected 1 income source, got %d", len(plan.IncomeSources))
	}
	src := plan.IncomeSources[0]
	if src.Name != "Primary Income" || !src.Amount.Equal(decimal.NewFromInt(35000)) {
		t.Errorf("Unexpected migrated source %+v", src)
	}
	if src.ID == uuid.Nil {
		t.Error("Expected migrated source to get an id")
	}
	if !plan.MonthlyIncome.Equal(decimal.NewFromInt(35000)) {
		t.Errorf("Expected income 35000, got %s", plan.MonthlyIncome)
	}
}

func TestNormalize_FillsMissingIDsAndFixesIncome(t *testing.T) {
	plan := &Plan{
		MonthlyIncome: decimal.NewFromInt(1),
		IncomeSources: []IncomeSource{{Name: "Freelance", Amount: decimal.NewFromInt(1200)}},
	}

	plan.Normalize()

	if plan.IncomeSources[0].ID == uuid.Nil {
		t.Error("Expected id to be assigned")
	}
	if !plan.MonthlyIncome.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("Expected income 1200, got %s", plan.MonthlyIncome)
	}
}

func TestExpensesPatch_Merge(t *testing.T) {
	food := decimal.NewFromInt(9000)
	patch := ExpensesPatch{Food: &food}
	base := MonthlyExpenses{General: decimal.NewFromInt(20000), Food: decimal.NewFromInt(8000)}

	merged := patch.Merge(base)

	if !merged.General.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Expected general to be kept, got %s", merged.General)
	}
	if !merged.Food.Equal(food) {
		t.Errorf("Expected food 9000, got %s", merged.Food)
	}
	if !merged.Total().Equal(decimal.NewFromInt(29000)) {
		t.Errorf("Expected total 29000, got %s", merged.Total())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Plan)
		wantErr error
	}{
		{"valid", func(p *Plan) {}, nil},
		{"negative income", func(p *Plan) { p.IncomeSources[0].Amount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"blank source name", func(p *Plan) { p.IncomeSources[0].Name = "  " }, ErrNameRequired},
		{"negative expense", func(p *Plan) { p.MonthlyExpenses.Food = decimal.NewFromInt(-5) }, ErrNegativeAmount},
		{"rate too high", func(p *Plan) { p.InvestmentReturnRate = decimal.NewFromInt(101) }, ErrInvalidRate},
		{"negative goal progress", func(p *Plan) { p.Goals[2].CurrentAmount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"deadline out of range", func(p *Plan) { p.Goals[2].DeadlineYear = 1999 }, ErrInvalidDeadline},
		{"income too large", func(p *Plan) { p.IncomeSources[0].Amount = MaxAmount }, ErrAmountTooLarge},
		{"income sum too large", func(p *Plan) {
			half := MaxAmount.Div(decimal.NewFromInt(2))
			p.IncomeSources = append(p.IncomeSources, IncomeSource{Name: "Side", Amount: half})
			p.IncomeSources[0].Amount = half
			p.RecalculateIncome()
		}, ErrAmountTooLarge},
		{"expense too large", func(p *Plan) { p.MonthlyExpenses.General = decimal.New(2, 13) }, ErrAmountTooLarge},
		{"goal target too large", func(p *Plan) { p.Goals[2].TargetAmount = decimal.New(1, 14) }, ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DefaultPlan(1)
			tt.mutate(plan)
			err := plan.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSnapshot_ConvertsPlan(t *testing.T) {
	plan := DefaultPlan(1)
	plan.Goals[plan.FindGoal(GoalRetirement)].CurrentAmount = decimal.NewFromInt(250000)

	s := plan.Snapshot()

	if s.MonthlyIncome() != 50000 {
		t.Errorf("Expected income 50000, got %v", s.MonthlyIncome())
	}
	if s.Expenses.Total() != 30000 {
		t.Errorf("Expected expenses 30000, got %v", s.Expenses.Total())
	}
	if s.InvestmentReturnRate != 8 {
		t.Errorf("Expected return rate 8, got %v", s.InvestmentReturnRate)
	}
	if s.InitialCapital() != 250000 {
		t.Errorf("Expected initial capital 250000, got %v", s.InitialCapital())
	}
	g, ok := s.Goal(GoalEmergencyFund)
	if !ok || g.TargetAmount != 180000 {
		t.Errorf("Expected emergency target 180000, got %+v", g)
	}
}

func TestClone_IsDeep(t *testing.T) {
	plan := DefaultPlan(1)
	clone := plan.Clone()

	clone.Goals[0].Name = "Changed"
	clone.IncomeSources[0].Amount = decimal.NewFromInt(1)

	if plan.Goals[0].Name == "Changed" {
		t.Error("Expected goals to be copied")
	}
	if plan.IncomeSources[0].Amount.Equal(decimal.NewFromInt(1)) {
		t.Error("Expected income sources to be copied")
	}
}

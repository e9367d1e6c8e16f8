package domain

import (
	"strings"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeSource is a named monthly income stream
type IncomeSource struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyExpenses holds the fixed expense categories
type MonthlyExpenses struct {
	General    decimal.Decimal `json:"general"`
	Education  decimal.Decimal `json:"education"`
	Healthcare decimal.Decimal `json:"healthcare"`
	Food       decimal.Decimal `json:"food"`
}

// Total returns the sum of all expense categories
func (e MonthlyExpenses) Total() decimal.Decimal {
	return e.General.Add(e.Education).Add(e.Healthcare).Add(e.Food)
}

// ExpensesPatch is a partial update of expense categories; nil fields keep their value
type ExpensesPatch struct {
	General    *decimal.Decimal `json:"general,omitempty"`
	Education  *decimal.Decimal `json:"education,omitempty"`
	Healthcare *decimal.Decimal `json:"healthcare,omitempty"`
	Food       *decimal.Decimal `json:"food,omitempty"`
}

// Merge applies the patch on top of the given expenses
func (p ExpensesPatch) Merge(e MonthlyExpenses) MonthlyExpenses {
	if p.General != nil {
		e.General = *p.General
	}
	if p.Education != nil {
		e.Education = *p.Education
	}
	if p.Healthcare != nil {
		e.Healthcare = *p.Healthcare
	}
	if p.Food != nil {
		e.Food = *p.Food
	}
	return e
}

// Plan is a workspace's financial state: income, expenses, assumptions and goals
type Plan struct {
	WorkspaceID          int32           `json:"workspaceId"`
	MonthlyIncome        decimal.Decimal `json:"monthlyIncome"`
	IncomeSources        []IncomeSource  `json:"incomeSources"`
	IncomeGrowthRate     decimal.Decimal `json:"incomeGrowthRate"`
	InvestmentReturnRate decimal.Decimal `json:"investmentReturnRate"`
	MonthlyExpenses      MonthlyExpenses `json:"monthlyExpenses"`
	Goals                []Goal          `json:"goals"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// FinancialsUpdate is a partial update of the plan's financial inputs
type FinancialsUpdate struct {
	IncomeSources        []IncomeSource
	IncomeGrowthRate     *decimal.Decimal
	InvestmentReturnRate *decimal.Decimal
	MonthlyExpenses      *ExpensesPatch
}

// RecalculateIncome sets MonthlyIncome to the sum of the income sources
func (p *Plan) RecalculateIncome() {
	total := decimal.Zero
	for _, src := range p.IncomeSources {
		total = total.Add(src.Amount)
	}
	p.MonthlyIncome = total
}

// ApplyEmergencyFundTarget derives the emergency fund target from the current expenses
func (p *Plan) ApplyEmergencyFundTarget() {
	target := p.MonthlyExpenses.Total().Mul(decimal.NewFromInt(planner.EmergencyFundMonths))
	for i := range p.Goals {
		if p.Goals[i].ID == GoalEmergencyFund {
			p.Goals[i].TargetAmount = target
		}
	}
}

// Normalize repairs plans stored before income sources existed and fills missing ids,
// then restores the income invariant
func (p *Plan) Normalize() {
	if len(p.IncomeSources) == 0 {
		p.IncomeSources = []IncomeSource{{
			ID:     uuid.New(),
			Name:   "Primary Income",
			Amount: p.MonthlyIncome,
		}}
	}
	for i := range p.IncomeSources {
		if p.IncomeSources[i].ID == uuid.Nil {
			p.IncomeSources[i].ID = uuid.New()
		}
	}
	p.RecalculateIncome()
}

// FindGoal returns the index of the goal with the given id, or -1
func (p *Plan) FindGoal(id string) int {
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the plan
func (p *Plan) Clone() *Plan {
	c := *p
	c.IncomeSources = append([]IncomeSource(nil), p.IncomeSources...)
	c.Goals = append([]Goal(nil), p.Goals...)
	return &c
}

// Snapshot converts the plan into the engine's immutable input
func (p *Plan) Snapshot() planner.Snapshot {
	sources := make([]planner.IncomeSource, len(p.IncomeSources))
	for i, src := range p.IncomeSources {
		sources[i] = planner.IncomeSource{
			ID:     src.ID.String(),
			Name:   src.Name,
			Amount: src.Amount.InexactFloat64(),
		}
	}

	goals := make([]planner.Goal, len(p.Goals))
	for i, g := range p.Goals {
		goals[i] = g.Planner()
	}

	return planner.NewSnapshot(
		sources,
		p.MonthlyExpenses.toPlanner(),
		planner.AnnualPercentRate(p.IncomeGrowthRate.InexactFloat64()),
		planner.AnnualPercentRate(p.InvestmentReturnRate.InexactFloat64()),
		goals,
	)
}

func (e MonthlyExpenses) toPlanner() planner.Expenses {
	return planner.Expenses{
		General:    e.General.InexactFloat64(),
		Education:  e.Education.InexactFloat64(),
		Healthcare: e.Healthcare.InexactFloat64(),
		Food:       e.Food.InexactFloat64(),
	}
}

// Validate checks the plan before it is stored
func (p *Plan) Validate() error {
	for _, src := range p.IncomeSources {
		if strings.TrimSpace(src.Name) == "" {
			return ErrNameRequired
		}
		if len(src.Name) > MaxNameLength {
			return ErrNameTooLong
		}
		if err := ValidateAmount(src.Amount); err != nil {
			return err
		}
	}

	for _, v := range []decimal.Decimal{
		p.MonthlyIncome,
		p.MonthlyExpenses.General,
		p.MonthlyExpenses.Education,
		p.MonthlyExpenses.Healthcare,
		p.MonthlyExpenses.Food,
	} {
		if err := ValidateAmount(v); err != nil {
			return err
		}
	}

	if !rateInRange(p.IncomeGrowthRate) || !rateInRange(p.InvestmentReturnRate) {
		return ErrInvalidRate
	}

	for i := range p.Goals {
		if err := p.Goals[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

func rateInRange(r decimal.Decimal) bool {
	return r.GreaterThanOrEqual(decimal.NewFromInt(MinRatePercent)) && r.LessThanOrEqual(decimal.NewFromInt(MaxRatePercent))
}

// PlanRepository defines the interface for plan persistence operations
type PlanRepository interface {
	GetByWorkspace(workspaceID int32) (*Plan, error)
	Save(plan *Plan) (*Plan, error)
	UpdateGoalProgress(workspaceID int32, goalID string, currentAmount decimal.Decimal) (*Goal, error)
	ListWorkspaceIDs() ([]int32, error)
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnknownKeys is returned when a plan file contains keys that map to nothing
var ErrUnknownKeys = errors.New("unknown keys in plan file")

// PlanFile is the TOML form of a plan. Omitted sections keep the default plan's values.
type PlanFile struct {
	IncomeGrowthRate     *float64           `toml:"income_growth_rate,omitempty"`
	InvestmentReturnRate *float64           `toml:"investment_return_rate,omitempty"`
	IncomeSources        []IncomeSourceFile `toml:"income_sources,omitempty"`
	Expenses             *ExpensesFile      `toml:"expenses,omitempty"`
	Goals                []GoalFile         `toml:"goals,omitempty"`
}

// IncomeSourceFile is one [[income_sources]] entry
type IncomeSourceFile struct {
	Name   string  `toml:"name"`
	Amount float64 `toml:"amount"`
}

// ExpensesFile is the [expenses] table; omitted categories keep their default
type ExpensesFile struct {
	General    *float64 `toml:"general,omitempty"`
	Education  *float64 `toml:"education,omitempty"`
	Healthcare *float64 `toml:"healthcare,omitempty"`
	Food       *float64 `toml:"food,omitempty"`
}

// GoalFile is one [[goals]] entry. Entries with a catalog id override that goal,
// other ids add a goal.
type GoalFile struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name,omitempty"`
	TargetAmount  *float64 `toml:"target_amount,omitempty"`
	CurrentAmount *float64 `toml:"current_amount,omitempty"`
	DeadlineYear  *int     `toml:"deadline_year,omitempty"`
}

// LoadPlan reads a plan file. An empty path yields the default plan.
func LoadPlan(path string) (*domain.Plan, error) {
	if path == "" {
		return domain.DefaultPlan(0), nil
	}

	var pf PlanFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	return pf.Plan()
}

// Plan applies the file on top of the default plan and validates the result
func (pf PlanFile) Plan() (*domain.Plan, error) {
	plan := domain.DefaultPlan(0)

	if pf.IncomeGrowthRate != nil {
		plan.IncomeGrowthRate = decimal.NewFromFloat(*pf.IncomeGrowthRate)
	}
	if pf.InvestmentReturnRate != nil {
		plan.InvestmentReturnRate = decimal.NewFromFloat(*pf.InvestmentReturnRate)
	}

	if pf.IncomeSources != nil {
		plan.IncomeSources = make([]domain.IncomeSource, len(pf.IncomeSources))
		for i, src := range pf.IncomeSources {
			plan.IncomeSources[i] = domain.IncomeSource{
				ID:     uuid.New(),
				Name:   strings.TrimSpace(src.Name),
				Amount: decimal.NewFromFloat(src.Amount),
			}
		}
	}

	if pf.Expenses != nil {
		plan.MonthlyExpenses = domain.ExpensesPatch{
			General:    optionalDecimal(pf.Expenses.General),
			Education:  optionalDecimal(pf.Expenses.Education),
			Healthcare: optionalDecimal(pf.Expenses.Healthcare),
			Food:       optionalDecimal(pf.Expenses.Food),
		}.Merge(plan.MonthlyExpenses)
	}

	for _, g := range pf.Goals {
		if err := applyGoal(plan, g); err != nil {
			return nil, err
		}
	}

	plan.RecalculateIncome()
	plan.ApplyEmergencyFundTarget()

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return plan, nil
}

func applyGoal(plan *domain.Plan, g GoalFile) error {
	id := strings.TrimSpace(g.ID)
	if id == "" {
		return fmt.Errorf("invalid plan: goal without id: %w", domain.ErrInvalidInput)
	}
	if id == domain.GoalEmergencyFund && g.TargetAmount != nil {
		return fmt.Errorf("invalid plan: %s: %w", id, domain.ErrDerivedTarget)
	}

	idx := plan.FindGoal(id)
	if idx < 0 {
		plan.Goals = append(plan.Goals, domain.Goal{ID: id, Name: id})
		idx = len(plan.Goals) - 1
	}

	goal := &plan.Goals[idx]
	if name := strings.TrimSpace(g.Name); name != "" {
		goal.Name = name
	}
	if g.TargetAmount != nil {
		goal.TargetAmount = decimal.NewFromFloat(*g.TargetAmount)
	}
	if g.CurrentAmount != nil {
		goal.CurrentAmount = decimal.NewFromFloat(*g.CurrentAmount)
	}
	if g.DeadlineYear != nil {
		goal.DeadlineYear = *g.DeadlineYear
	}
	return nil
}

func optionalDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func floatPtr(d decimal.Decimal) *float64 {
	v := d.InexactFloat64()
	return &v
}

// NewPlanFile converts a plan into its file form. The emergency fund target is left out.
func NewPlanFile(plan *domain.Plan) PlanFile {
	pf := PlanFile{
		IncomeGrowthRate:     floatPtr(plan.IncomeGrowthRate),
		InvestmentReturnRate: floatPtr(plan.InvestmentReturnRate),
		IncomeSources:        make([]IncomeSourceFile, len(plan.IncomeSources)),
		Expenses: &ExpensesFile{
			General:    floatPtr(plan.MonthlyExpenses.General),
			Education:  floatPtr(plan.MonthlyExpenses.Education),
			Healthcare: floatPtr(plan.MonthlyExpenses.Healthcare),
			Food:       floatPtr(plan.MonthlyExpenses.Food),
		},
		Goals: make([]GoalFile, len(plan.Goals)),
	}

	for i, src := range plan.IncomeSources {
		pf.IncomeSources[i] = IncomeSourceFile{Name: src.Name, Amount: src.Amount.InexactFloat64()}
	}

	for i, g := range plan.Goals {
		deadline := g.DeadlineYear
		gf := GoalFile{
			ID:            g.ID,
			Name:          g.Name,
			CurrentAmount: floatPtr(g.CurrentAmount),
			DeadlineYear:  &deadline,
		}
		if g.ID != domain.GoalEmergencyFund {
			gf.TargetAmount = floatPtr(g.TargetAmount)
		}
		pf.Goals[i] = gf
	}
	return pf
}

// WritePlan encodes the plan as TOML
func WritePlan(w io.Writer, plan *domain.Plan) error {
	if err := toml.NewEncoder(w).Encode(NewPlanFile(plan)); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return nil
}

// WritePlanFile writes the plan to path, refusing to replace an existing file unless force is set
func WritePlanFile(path string, plan *domain.Plan, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create plan file: %w", err)
	}
	defer f.Close()

	return WritePlan(f, plan)
}

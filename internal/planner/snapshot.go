// Package planner is the projection and goal-solving engine.
//
// Every function in this package is a pure mapping from a Snapshot to freshly
// allocated results. Nothing here logs, performs I/O or mutates its inputs, so
// the engine is safe to call concurrently and as often as callers like.
package planner

// Goal ids with special meaning to the engine
const (
	GoalEmergencyFund = "emergency_fund"
	GoalRetirement    = "retirement"
)

// EmergencyFundMonths is how many months of expenses the emergency fund must cover
const EmergencyFundMonths = 6

// IncomeSource is one named monthly income stream
type IncomeSource struct {
	ID     string
	Name   string
	Amount float64
}

// Expenses holds the fixed set of monthly expense categories
type Expenses struct {
	General    float64
	Education  float64
	Healthcare float64
	Food       float64
}

// Total returns the sum of all categories
func (e Expenses) Total() float64 {
	return e.General + e.Education + e.Healthcare + e.Food
}

// Goal is one savings objective
type Goal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	DeadlineYear  int
}

// Snapshot is an immutable point-in-time view of a user's finances.
// Build it with NewSnapshot so MonthlyIncome always equals the sum of the sources.
type Snapshot struct {
	incomeSources        []IncomeSource
	monthlyIncome        float64
	Expenses             Expenses
	IncomeGrowthRate     AnnualPercentRate
	InvestmentReturnRate AnnualPercentRate
	goals                []Goal
}

// NewSnapshot creates a snapshot, copying sources and goals and deriving monthly income
func NewSnapshot(sources []IncomeSource, expenses Expenses, incomeGrowth, investmentReturn AnnualPercentRate, goals []Goal) Snapshot {
	s := Snapshot{
		Expenses:             expenses,
		IncomeGrowthRate:     incomeGrowth,
		InvestmentReturnRate: investmentReturn,
		goals:                append([]Goal(nil), goals...),
	}
	return s.WithIncomeSources(sources)
}

// WithIncomeSources returns a copy of the snapshot with new sources and a recomputed income
func (s Snapshot) WithIncomeSources(sources []IncomeSource) Snapshot {
	s.incomeSources = append([]IncomeSource(nil), sources...)
	s.monthlyIncome = SumIncome(sources)
	return s
}

// WithGoals returns a copy of the snapshot with a new goal list
func (s Snapshot) WithGoals(goals []Goal) Snapshot {
	s.goals = append([]Goal(nil), goals...)
	return s
}

// MonthlyIncome returns the aggregate monthly income
func (s Snapshot) MonthlyIncome() float64 {
	return s.monthlyIncome
}

// IncomeSources returns a copy of the income sources
func (s Snapshot) IncomeSources() []IncomeSource {
	return append([]IncomeSource(nil), s.incomeSources...)
}

// Goals returns a copy of the goals
func (s Snapshot) Goals() []Goal {
	return append([]Goal(nil), s.goals...)
}

// Goal looks up a goal by id
func (s Snapshot) Goal(id string) (Goal, bool) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// MonthlySavings is income minus total expenses, negative when spending exceeds income
func (s Snapshot) MonthlySavings() float64 {
	return s.monthlyIncome - s.Expenses.Total()
}

// InitialCapital is the sum of every goal's current amount
func (s Snapshot) InitialCapital() float64 {
	total := 0.0
	for _, g := range s.goals {
		total += g.CurrentAmount
	}
	return total
}

// SumIncome adds up the amounts of the given sources
func SumIncome(sources []IncomeSource) float64 {
	total := 0.0
	for _, src := range sources {
		total += src.Amount
	}
	return total
}

// EmergencyFundTarget returns the target of the emergency fund goal for the given expenses
func EmergencyFundTarget(expenses Expenses) float64 {
	return expenses.Total() * EmergencyFundMonths
}

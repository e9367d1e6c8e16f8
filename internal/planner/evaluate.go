package planner

// GoalComputation holds the derived figures for one goal
type GoalComputation struct {
	GoalID         string
	YearsRemaining int
	Progress       float64
	Status         Status
	// MonthlyContributionNeeded is +Inf when the deadline is due or past
	MonthlyContributionNeeded float64
	// RequiredAnnualReturn is nil when the question is not applicable
	RequiredAnnualReturn *RequiredReturn
}

// Report is everything the engine derives from one snapshot
type Report struct {
	BaseYear       int
	MonthlySavings float64
	InitialCapital float64
	Projection     []ProjectionPoint
	Goals          []GoalComputation
	Wellness       Wellness
}

// YearsRemaining counts whole calendar years until the deadline.
// Goals without a deadline (deadlineYear <= 0) have none left.
func YearsRemaining(deadlineYear, currentYear int) int {
	if deadlineYear <= 0 {
		return 0
	}
	return deadlineYear - currentYear
}

// EvaluateGoal computes the contribution needed at the snapshot's return assumption and
// the return needed at the snapshot's actual monthly savings
func EvaluateGoal(s Snapshot, g Goal, currentYear int) GoalComputation {
	years := YearsRemaining(g.DeadlineYear, currentYear)
	progress := GoalProgress(g)

	gc := GoalComputation{
		GoalID:                    g.ID,
		YearsRemaining:            years,
		Progress:                  progress,
		Status:                    StatusFor(progress),
		MonthlyContributionNeeded: RequiredMonthlyContribution(g.TargetAmount, g.CurrentAmount, years, s.InvestmentReturnRate),
	}

	if rr, ok := RequiredAnnualReturn(g.TargetAmount, g.CurrentAmount, years, s.MonthlySavings()); ok {
		gc.RequiredAnnualReturn = &rr
	}

	return gc
}

// Evaluate runs the projection, every goal computation and the wellness score
func Evaluate(s Snapshot, currentYear int) Report {
	goals := s.Goals()
	computations := make([]GoalComputation, 0, len(goals))
	for _, g := range goals {
		computations = append(computations, EvaluateGoal(s, g, currentYear))
	}

	return Report{
		BaseYear:       currentYear,
		MonthlySavings: s.MonthlySavings(),
		InitialCapital: s.InitialCapital(),
		Projection:     ProjectWealth(s, currentYear),
		Goals:          computations,
		Wellness:       WellnessScore(s),
	}
}

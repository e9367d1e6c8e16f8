package planner

const (
	// SolverIterations is the fixed number of bisection halvings
	SolverIterations = 100
	// SolverFloor is the lowest candidate annual rate in percent
	SolverFloor AnnualPercentRate = 0
	// SolverCeiling is the highest candidate annual rate in percent
	SolverCeiling AnnualPercentRate = 100
)

// RequiredReturn is the outcome of the rate-of-return solver
type RequiredReturn struct {
	Rate AnnualPercentRate
	// AtCeiling is set when even SolverCeiling does not reach the target,
	// in which case Rate is pinned to the ceiling.
	AtCeiling bool
}

// RequiredAnnualReturn finds the annual rate at which current plus a fixed monthly
// contribution grows to target in yearsRemaining years.
//
// ok is false when the question has no positive-rate answer: the deadline is due,
// there is nothing to contribute, the goal is already met, or contributions alone
// reach the target without any growth.
func RequiredAnnualReturn(target, current float64, yearsRemaining int, monthlyContribution float64) (RequiredReturn, bool) {
	if yearsRemaining <= 0 || monthlyContribution <= 0 || target <= current {
		return RequiredReturn{}, false
	}

	months := yearsRemaining * 12
	if target <= current+monthlyContribution*float64(months) {
		return RequiredReturn{}, false
	}

	low, high := SolverFloor, SolverCeiling
	mid := low
	// Fixed iteration budget; future value is monotonic in the rate.
	for i := 0; i < SolverIterations; i++ {
		mid = (low + high) / 2
		monthly := mid.Monthly()
		if monthly == 0 {
			low = mid
			continue
		}

		if FutureValue(current, monthlyContribution, monthly, months) > target {
			high = mid
		} else {
			low = mid
		}
	}

	atCeiling := FutureValue(current, monthlyContribution, SolverCeiling.Monthly(), months) < target
	return RequiredReturn{Rate: mid, AtCeiling: atCeiling}, true
}

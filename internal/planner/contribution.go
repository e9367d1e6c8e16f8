package planner

import "math"

// RequiredMonthlyContribution returns the constant monthly payment that, together with
// the compounded current amount, reaches target exactly after yearsRemaining years.
//
// A deadline that is due or past (yearsRemaining <= 0) returns +Inf: no contribution
// schedule can meet it. Zero is returned when growth of the current amount alone
// already reaches the target.
func RequiredMonthlyContribution(target, current float64, yearsRemaining int, rate AnnualPercentRate) float64 {
	if yearsRemaining <= 0 {
		return math.Inf(1)
	}

	months := yearsRemaining * 12
	monthly := rate.Monthly()

	fvCurrent := current * GrowthFactor(monthly, months)
	remaining := target - fvCurrent
	if remaining <= 0 {
		return 0
	}

	if monthly == 0 {
		return remaining / float64(months)
	}

	pmt := remaining * float64(monthly) / (GrowthFactor(monthly, months) - 1)
	if pmt < 0 {
		return 0
	}
	return pmt
}

// IsUnreachable reports whether a required contribution is the "infinite" sentinel
func IsUnreachable(contribution float64) bool {
	return math.IsInf(contribution, 1)
}

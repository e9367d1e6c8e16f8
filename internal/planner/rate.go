package planner

import "math"

// AnnualPercentRate is an annual rate expressed in percent (8 means 8%)
type AnnualPercentRate float64

// MonthlyRate is a monthly rate expressed as a fraction (0.01 means 1% per month)
type MonthlyRate float64

// Monthly converts an annual percentage into the equivalent nominal monthly fraction
func (r AnnualPercentRate) Monthly() MonthlyRate {
	return MonthlyRate(float64(r) / 100 / 12)
}

// Annual converts a monthly fraction back into an annual percentage
func (r MonthlyRate) Annual() AnnualPercentRate {
	return AnnualPercentRate(float64(r) * 12 * 100)
}

// GrowthFactor returns (1+r)^months
func GrowthFactor(r MonthlyRate, months int) float64 {
	return math.Pow(1+float64(r), float64(months))
}

// FutureValue returns the value after months periods of compounding principal at rate r
// while adding contribution at the end of every period.
// At a zero rate the annuity term degenerates to contribution*months.
func FutureValue(principal, contribution float64, r MonthlyRate, months int) float64 {
	if r == 0 {
		return principal + contribution*float64(months)
	}
	growth := GrowthFactor(r, months)
	return principal*growth + contribution*(growth-1)/float64(r)
}

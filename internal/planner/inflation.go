package planner

import "math"

// ExpenseInflation holds an annual inflation assumption per expense category, in percent
type ExpenseInflation struct {
	General    AnnualPercentRate
	Education  AnnualPercentRate
	Healthcare AnnualPercentRate
	Food       AnnualPercentRate
}

// DefaultExpenseInflation is the built-in per-category inflation assumption
var DefaultExpenseInflation = ExpenseInflation{
	General:    6,
	Education:  11,
	Healthcare: 12,
	Food:       8,
}

// InflateExpenses compounds each category annually for the given number of years
func InflateExpenses(e Expenses, rates ExpenseInflation, years int) Expenses {
	if years <= 0 {
		return e
	}
	return Expenses{
		General:    compound(e.General, rates.General, years),
		Education:  compound(e.Education, rates.Education, years),
		Healthcare: compound(e.Healthcare, rates.Healthcare, years),
		Food:       compound(e.Food, rates.Food, years),
	}
}

func compound(amount float64, rate AnnualPercentRate, years int) float64 {
	return amount * math.Pow(1+float64(rate)/100, float64(years))
}

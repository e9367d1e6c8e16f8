package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
)

// RenderSummary renders the plan's monthly cash flow and assumptions.
func RenderSummary(plan *domain.Plan, s planner.Snapshot) string {
	rows := make([][]string, 0, len(plan.IncomeSources)+8)
	for _, src := range plan.IncomeSources {
		rows = append(rows, []string{src.Name, FormatINR(src.Amount.InexactFloat64())})
	}
	rows = append(rows,
		[]string{"Monthly Income", FormatINR(s.MonthlyIncome())},
		[]string{"Monthly Expenses", FormatINR(s.Expenses.Total())},
		[]string{"Monthly Savings", FormatINR(s.MonthlySavings())},
		[]string{"---"},
		[]string{"Initial Capital", FormatINR(s.InitialCapital())},
		[]string{"Investment Return", FormatRate(s.InvestmentReturnRate)},
		[]string{"Income Growth", FormatRate(s.IncomeGrowthRate)},
	)
	return RenderTable(Table{Title: "Plan", Rows: rows})
}

// RenderProjection renders year-end portfolio values, every step-th year plus the last.
func RenderProjection(points []planner.ProjectionPoint, step int) string {
	if step < 1 {
		step = 1
	}

	values := make([]float64, len(points))
	rows := make([][]string, 0, len(points)/step+1)
	for i, p := range points {
		values[i] = p.Value
		if (i+1)%step == 0 || i == len(points)-1 {
			rows = append(rows, []string{strconv.Itoa(p.Year), FormatINR(p.Value)})
		}
	}

	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Title:   "Wealth Projection",
		Headers: []string{"Year", "Portfolio"},
		Rows:    rows,
	}))
	if len(values) > 1 {
		b.WriteString("  ")
		b.WriteString(RenderSparkline(values))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderGoals renders every goal with its derived figures, in plan order.
func RenderGoals(plan *domain.Plan, report planner.Report) string {
	rows := make([][]string, 0, len(report.Goals))
	for _, gc := range report.Goals {
		idx := plan.FindGoal(gc.GoalID)
		if idx < 0 {
			continue
		}
		g := plan.Goals[idx]

		deadline := "-"
		if g.DeadlineYear > 0 {
			deadline = fmt.Sprintf("%d (%dy)", g.DeadlineYear, gc.YearsRemaining)
		}

		rows = append(rows, []string{
			g.Name,
			FormatINR(g.TargetAmount.InexactFloat64()),
			FormatINR(g.CurrentAmount.InexactFloat64()),
			FormatPercent(gc.Progress),
			RenderStatus(gc.Status),
			deadline,
			FormatContribution(gc.MonthlyContributionNeeded),
			FormatRequiredReturn(gc.RequiredAnnualReturn),
		})
	}

	return RenderTable(Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Target", "Saved", "Progress", "Status", "Deadline", "Needed", "Return Needed"},
		Rows:    rows,
	})
}

// RenderWellness renders the wellness score and its components.
func RenderWellness(w planner.Wellness) string {
	var b strings.Builder
	b.WriteString("  Financial wellness: ")
	b.WriteString(RenderBand(w.Score, w.Band))
	b.WriteString("\n  ")
	b.WriteString(RenderMuted(w.Band.Message()))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(Table{
		Headers: []string{"Component", "Points", "Max"},
		Rows: [][]string{
			{"Savings rate " + FormatPercent(w.SavingsRate*100), fmt.Sprintf("%.1f", w.SavingsPoints), strconv.Itoa(planner.SavingsWeight)},
			{"Emergency fund", fmt.Sprintf("%.1f", w.EmergencyPoints), strconv.Itoa(planner.EmergencyWeight)},
			{"Retirement", fmt.Sprintf("%.1f", w.RetirementPoints), strconv.Itoa(planner.RetirementWeight)},
		},
	}))
	return b.String()
}

// RenderInflation renders today's expenses next to their inflated value.
func RenderInflation(current planner.Expenses, rates planner.ExpenseInflation, years int) string {
	projected := planner.InflateExpenses(current, rates, years)
	row := func(name string, rate planner.AnnualPercentRate, now, later float64) []string {
		return []string{name, FormatRate(rate), FormatINR(now), FormatINR(later)}
	}

	return RenderTable(Table{
		Title:   fmt.Sprintf("Monthly Expenses in %d Years", years),
		Headers: []string{"Category", "Inflation", "Today", "Then"},
		Rows: [][]string{
			row("General", rates.General, current.General, projected.General),
			row("Education", rates.Education, current.Education, projected.Education),
			row("Healthcare", rates.Healthcare, current.Healthcare, projected.Healthcare),
			row("Food", rates.Food, current.Food, projected.Food),
			{"---"},
			{"Total", "", FormatINR(current.Total()), FormatINR(projected.Total())},
		},
	})
}

package service

import (
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an engine amount with two decimals
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatContribution renders a required contribution.
// An unreachable contribution has no amount and reports the deadline as passed.
func FormatContribution(v float64) (amount *string, deadlinePassed bool) {
	if planner.IsUnreachable(v) {
		return nil, true
	}
	s := FormatMoney(v)
	return &s, false
}

// ProjectionPointDocument is one year-end value of the wealth projection
type ProjectionPointDocument struct {
	Year  int    `json:"year"`
	Value string `json:"value"`
}

// GoalDocument is a goal with its derived figures
type GoalDocument struct {
	ID                        string  `json:"id"`
	Name                      string  `json:"name"`
	TargetAmount              string  `json:"targetAmount"`
	CurrentAmount             string  `json:"currentAmount"`
	DeadlineYear              int     `json:"deadlineYear"`
	YearsRemaining            int     `json:"yearsRemaining"`
	Progress                  string  `json:"progress"`
	Status                    string  `json:"status"`
	StatusLabel               string  `json:"statusLabel"`
	MonthlyContributionNeeded *string `json:"monthlyContributionNeeded"`
	DeadlinePassed            bool    `json:"deadlinePassed"`
	RequiredAnnualReturn      *string `json:"requiredAnnualReturn"`
	RequiredReturnAtCeiling   bool    `json:"requiredReturnAtCeiling"`
}

// WellnessDocument is the wellness score with its components
type WellnessDocument struct {
	Score            int    `json:"score"`
	Band             string `json:"band"`
	Message          string `json:"message"`
	SavingsRate      string `json:"savingsRate"`
	SavingsPoints    string `json:"savingsPoints"`
	EmergencyPoints  string `json:"emergencyPoints"`
	RetirementPoints string `json:"retirementPoints"`
}

// ReportDocument is the full projection report as served by the API and exported to storage
type ReportDocument struct {
	WorkspaceID          int32                     `json:"workspaceId"`
	GeneratedAt          time.Time                 `json:"generatedAt"`
	BaseYear             int                       `json:"baseYear"`
	MonthlyIncome        string                    `json:"monthlyIncome"`
	MonthlyExpenses      string                    `json:"monthlyExpenses"`
	MonthlySavings       string                    `json:"monthlySavings"`
	InitialCapital       string                    `json:"initialCapital"`
	InvestmentReturnRate string                    `json:"investmentReturnRate"`
	Projection           []ProjectionPointDocument `json:"projection"`
	Goals                []GoalDocument            `json:"goals"`
	Wellness             WellnessDocument          `json:"wellness"`
}

// NewProjectionDocument formats projection points
func NewProjectionDocument(points []planner.ProjectionPoint) []ProjectionPointDocument {
	out := make([]ProjectionPointDocument, len(points))
	for i, p := range points {
		out[i] = ProjectionPointDocument{Year: p.Year, Value: FormatMoney(p.Value)}
	}
	return out
}

// NewGoalDocument formats a goal and its computation
func NewGoalDocument(g domain.Goal, gc planner.GoalComputation) GoalDocument {
	doc := GoalDocument{
		ID:             g.ID,
		Name:           g.Name,
		TargetAmount:   g.TargetAmount.StringFixed(2),
		CurrentAmount:  g.CurrentAmount.StringFixed(2),
		DeadlineYear:   g.DeadlineYear,
		YearsRemaining: gc.YearsRemaining,
		Progress:       decimal.NewFromFloat(gc.Progress).StringFixed(2),
		Status:         string(gc.Status),
		StatusLabel:    gc.Status.Label(),
	}
	doc.MonthlyContributionNeeded, doc.DeadlinePassed = FormatContribution(gc.MonthlyContributionNeeded)
	if rr := gc.RequiredAnnualReturn; rr != nil {
		rate := decimal.NewFromFloat(float64(rr.Rate)).StringFixed(2)
		doc.RequiredAnnualReturn = &rate
		doc.RequiredReturnAtCeiling = rr.AtCeiling
	}
	return doc
}

// NewWellnessDocument formats a wellness score
func NewWellnessDocument(w planner.Wellness) WellnessDocument {
	return WellnessDocument{
		Score:            w.Score,
		Band:             string(w.Band),
		Message:          w.Band.Message(),
		SavingsRate:      decimal.NewFromFloat(w.SavingsRate * 100).StringFixed(2),
		SavingsPoints:    decimal.NewFromFloat(w.SavingsPoints).StringFixed(2),
		EmergencyPoints:  decimal.NewFromFloat(w.EmergencyPoints).StringFixed(2),
		RetirementPoints: decimal.NewFromFloat(w.RetirementPoints).StringFixed(2),
	}
}

// NewReportDocument formats a plan report. Goals keep the plan's order.
func NewReportDocument(pr *PlanReport, generatedAt time.Time) ReportDocument {
	plan, report := pr.Plan, pr.Report

	goals := make([]GoalDocument, 0, len(report.Goals))
	for _, gc := range report.Goals {
		idx := plan.FindGoal(gc.GoalID)
		if idx < 0 {
			continue
		}
		goals = append(goals, NewGoalDocument(plan.Goals[idx], gc))
	}

	return ReportDocument{
		WorkspaceID:          plan.WorkspaceID,
		GeneratedAt:          generatedAt,
		BaseYear:             report.BaseYear,
		MonthlyIncome:        plan.MonthlyIncome.StringFixed(2),
		MonthlyExpenses:      plan.MonthlyExpenses.Total().StringFixed(2),
		MonthlySavings:       FormatMoney(report.MonthlySavings),
		InitialCapital:       FormatMoney(report.InitialCapital),
		InvestmentReturnRate: plan.InvestmentReturnRate.StringFixed(2),
		Projection:           NewProjectionDocument(report.Projection),
		Goals:                goals,
		Wellness:             NewWellnessDocument(report.Wellness),
	}
}

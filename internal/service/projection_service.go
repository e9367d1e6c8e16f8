package service

import (
	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
)

// MaxInflationYears bounds the expense inflation outlook
const MaxInflationYears = 50

// PlanReport is an engine report together with the plan it was computed from
type PlanReport struct {
	Plan   *domain.Plan
	Report planner.Report
}

// GoalEvaluation pairs a goal with its derived figures
type GoalEvaluation struct {
	Goal        domain.Goal
	Computation planner.GoalComputation
}

// InflationOutlook shows what today's monthly expenses cost after some years
type InflationOutlook struct {
	Years     int
	Rates     planner.ExpenseInflation
	Current   planner.Expenses
	Projected planner.Expenses
}

// ProjectionService runs the planner engine against a workspace's stored plan
type ProjectionService struct {
	plans *PlanService
	clock util.Clock
}

// NewProjectionService creates a new ProjectionService; a nil clock uses the system time
func NewProjectionService(plans *PlanService, clock util.Clock) *ProjectionService {
	if clock == nil {
		clock = util.SystemClock
	}
	return &ProjectionService{
		plans: plans,
		clock: clock,
	}
}

// CurrentYear is the calendar year projections start from
func (s *ProjectionService) CurrentYear() int {
	return s.clock.CurrentYear()
}

// GetReport computes the projection, every goal and the wellness score from one snapshot
func (s *ProjectionService) GetReport(workspaceID int32) (*PlanReport, error) {
	plan, err := s.plans.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}

	return &PlanReport{
		Plan:   plan,
		Report: planner.Evaluate(plan.Snapshot(), s.CurrentYear()),
	}, nil
}

// GetProjection returns the 30-year wealth projection
func (s *ProjectionService) GetProjection(workspaceID int32) ([]planner.ProjectionPoint, error) {
	plan, err := s.plans.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}
	return planner.ProjectWealth(plan.Snapshot(), s.CurrentYear()), nil
}

// GetGoalComputation evaluates a single goal
func (s *ProjectionService) GetGoalComputation(workspaceID int32, goalID string) (*GoalEvaluation, error) {
	plan, err := s.plans.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}

	idx := plan.FindGoal(goalID)
	if idx < 0 {
		return nil, domain.ErrGoalNotFound
	}

	goal := plan.Goals[idx]
	return &GoalEvaluation{
		Goal:        goal,
		Computation: planner.EvaluateGoal(plan.Snapshot(), goal.Planner(), s.CurrentYear()),
	}, nil
}

// GetWellness returns the financial wellness score
func (s *ProjectionService) GetWellness(workspaceID int32) (*planner.Wellness, error) {
	plan, err := s.plans.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}
	w := planner.WellnessScore(plan.Snapshot())
	return &w, nil
}

// GetInflationOutlook inflates the current expenses by the default per-category rates
func (s *ProjectionService) GetInflationOutlook(workspaceID int32, years int) (*InflationOutlook, error) {
	if years < 1 || years > MaxInflationYears {
		return nil, domain.ErrInvalidInput
	}

	plan, err := s.plans.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}

	current := plan.Snapshot().Expenses
	return &InflationOutlook{
		Years:     years,
		Rates:     planner.DefaultExpenseInflation,
		Current:   current,
		Projected: planner.InflateExpenses(current, planner.DefaultExpenseInflation, years),
	}, nil
}

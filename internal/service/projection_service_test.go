package service

import (
	"math"
	"testing"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/dafibh/nivesh/nivesh-backend/internal/testutil"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectionService() (*ProjectionService, *testutil.MockPlanRepository) {
	repo := testutil.NewMockPlanRepository()
	plans := NewPlanService(repo, nil)
	return NewProjectionService(plans, util.FixedClock(2026)), repo
}

func TestGetReport_DefaultPlan(t *testing.T) {
	svc, _ := setupProjectionService()

	pr, err := svc.GetReport(1)
	require.NoError(t, err)

	report := pr.Report
	assert.Equal(t, 2026, report.BaseYear)
	assert.Equal(t, 20000.0, report.MonthlySavings)
	require.Len(t, report.Projection, planner.ProjectionYears)
	assert.Equal(t, 2027, report.Projection[0].Year)
	assert.InDelta(t, 248998.52, report.Projection[0].Value, 0.01)
	assert.Equal(t, 2056, report.Projection[29].Year)
	assert.Len(t, report.Goals, len(domain.PredefinedGoals))

	// savings rate 40% and no goal progress
	assert.Equal(t, 40, report.Wellness.Score)
	assert.Equal(t, planner.BandFair, report.Wellness.Band)
}

func TestGetProjection_MatchesReport(t *testing.T) {
	svc, _ := setupProjectionService()

	points, err := svc.GetProjection(1)
	require.NoError(t, err)
	pr, err := svc.GetReport(1)
	require.NoError(t, err)

	assert.Equal(t, pr.Report.Projection, points)
}

func TestGetGoalComputation(t *testing.T) {
	svc, repo := setupProjectionService()
	plan := domain.DefaultPlan(1)
	idx := plan.FindGoal("car_purchase")
	plan.Goals[idx].CurrentAmount = decimal.NewFromInt(200000)
	repo.AddPlan(plan)

	eval, err := svc.GetGoalComputation(1, "car_purchase")
	require.NoError(t, err)

	gc := eval.Computation
	assert.Equal(t, "Car Purchase", eval.Goal.Name)
	assert.Equal(t, 2, gc.YearsRemaining)
	assert.InDelta(t, 16.67, gc.Progress, 0.01)
	assert.Equal(t, planner.StatusJustStarted, gc.Status)
	assert.InDelta(t, planner.RequiredMonthlyContribution(1200000, 200000, 2, 8), gc.MonthlyContributionNeeded, 1e-9)
	// 200000 + 20000*24 = 680000 < 1200000, so a return is needed
	require.NotNil(t, gc.RequiredAnnualReturn)
	assert.False(t, gc.RequiredAnnualReturn.AtCeiling)
}

func TestGetGoalComputation_DeadlineReached(t *testing.T) {
	svc, _ := setupProjectionService()

	eval, err := svc.GetGoalComputation(1, "vacation_fund")
	require.NoError(t, err)

	assert.Equal(t, 0, eval.Computation.YearsRemaining)
	assert.True(t, math.IsInf(eval.Computation.MonthlyContributionNeeded, 1))
	assert.Nil(t, eval.Computation.RequiredAnnualReturn)
}

func TestGetGoalComputation_UnknownGoal(t *testing.T) {
	svc, _ := setupProjectionService()

	_, err := svc.GetGoalComputation(1, "moon_trip")
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestGetWellness(t *testing.T) {
	svc, repo := setupProjectionService()
	plan := domain.DefaultPlan(1)
	plan.Goals[plan.FindGoal(domain.GoalEmergencyFund)].CurrentAmount = decimal.NewFromInt(90000)
	repo.AddPlan(plan)

	w, err := svc.GetWellness(1)
	require.NoError(t, err)

	// 40 + 15 + 0
	assert.Equal(t, 55, w.Score)
	assert.Equal(t, planner.BandGood, w.Band)
}

func TestGetInflationOutlook(t *testing.T) {
	svc, _ := setupProjectionService()

	outlook, err := svc.GetInflationOutlook(1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, outlook.Years)
	assert.InDelta(t, 21200, outlook.Projected.General, 1e-6)
	assert.InDelta(t, 2240, outlook.Projected.Healthcare, 1e-6)
	assert.InDelta(t, 8640, outlook.Projected.Food, 1e-6)
	assert.Equal(t, 0.0, outlook.Projected.Education)
	assert.Equal(t, 20000.0, outlook.Current.General)
}

func TestGetInflationOutlook_YearsOutOfRange(t *testing.T) {
	svc, _ := setupProjectionService()

	for _, years := range []int{0, -3, MaxInflationYears + 1} {
		_, err := svc.GetInflationOutlook(1, years)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "years=%d", years)
	}
}

func TestProjectionService_NilClockUsesSystemTime(t *testing.T) {
	svc := NewProjectionService(NewPlanService(testutil.NewMockPlanRepository(), nil), nil)
	assert.Equal(t, util.SystemClock().Year(), svc.CurrentYear())
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/dafibh/nivesh/nivesh-backend/internal/testutil"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportService(store *testutil.MockReportRepository) *ReportService {
	plans := NewPlanService(testutil.NewMockPlanRepository(), nil)
	projections := NewProjectionService(plans, util.FixedClock(2026))
	if store == nil {
		return NewReportService(projections, nil, 0)
	}
	return NewReportService(projections, store, 10*time.Minute)
}

func TestReportService_Disabled(t *testing.T) {
	svc := setupReportService(nil)

	assert.False(t, svc.IsEnabled())
	_, err := svc.Export(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReportStorageNotConfigured)
}

func TestReportService_Export(t *testing.T) {
	store := testutil.NewMockReportRepository()
	svc := setupReportService(store)

	export, err := svc.Export(context.Background(), 7)
	require.NoError(t, err)

	assert.NotEmpty(t, export.ID)
	assert.Equal(t, 10*time.Minute, export.ExpiresAt.Sub(export.GeneratedAt))
	assert.Contains(t, export.ChartURL, "7/reports/"+export.ID+"/chart.png")
	assert.Contains(t, export.ThumbnailURL, "thumb.png")
	assert.Contains(t, export.DataURL, "report.json")
	require.Len(t, store.Objects, 3)

	var chartKey, thumbKey, dataKey string
	for key := range store.Objects {
		switch {
		case strings.HasSuffix(key, "chart.png"):
			chartKey = key
		case strings.HasSuffix(key, "thumb.png"):
			thumbKey = key
		case strings.HasSuffix(key, "report.json"):
			dataKey = key
		}
	}

	chart, err := png.Decode(bytes.NewReader(store.Objects[chartKey]))
	require.NoError(t, err)
	assert.Equal(t, ChartWidth, chart.Bounds().Dx())
	assert.Equal(t, ChartHeight, chart.Bounds().Dy())

	thumb, err := png.Decode(bytes.NewReader(store.Objects[thumbKey]))
	require.NoError(t, err)
	assert.Equal(t, ThumbnailWidth, thumb.Bounds().Dx())

	assert.Equal(t, "application/json", store.Types[dataKey])
	var doc ReportDocument
	require.NoError(t, json.Unmarshal(store.Objects[dataKey], &doc))
	assert.Equal(t, int32(7), doc.WorkspaceID)
	assert.Equal(t, 2026, doc.BaseYear)
	assert.Len(t, doc.Projection, planner.ProjectionYears)
	assert.Equal(t, "248998.52", doc.Projection[0].Value)
	assert.Equal(t, "20000.00", doc.MonthlySavings)
}

func TestReportService_ExportCleansUpOnFailure(t *testing.T) {
	store := testutil.NewMockReportRepository()
	store.UploadErr = errors.New("bucket unavailable")
	store.FailOnUpload = 2
	svc := setupReportService(store)

	_, err := svc.Export(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "thumb.png")
	assert.Empty(t, store.Objects, "uploaded objects must be removed after a failure")
}

func TestReportService_ExportCleansUpOnSigningFailure(t *testing.T) {
	store := testutil.NewMockReportRepository()
	signErr := errors.New("credentials expired")
	store.PresignErr = signErr
	svc := setupReportService(store)

	export, err := svc.Export(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, export)
	assert.ErrorIs(t, err, signErr)
	assert.Empty(t, store.Objects)
}

func TestNewReportDocument_DeadlinePassed(t *testing.T) {
	plans := NewPlanService(testutil.NewMockPlanRepository(), nil)
	projections := NewProjectionService(plans, util.FixedClock(2026))
	pr, err := projections.GetReport(1)
	require.NoError(t, err)

	doc := NewReportDocument(pr, time.Now())

	var vacation *GoalDocument
	for i := range doc.Goals {
		if doc.Goals[i].ID == "vacation_fund" {
			vacation = &doc.Goals[i]
		}
	}
	require.NotNil(t, vacation)
	assert.Nil(t, vacation.MonthlyContributionNeeded)
	assert.True(t, vacation.DeadlinePassed)
	assert.Nil(t, vacation.RequiredAnnualReturn)
	assert.Equal(t, "Just Started", vacation.StatusLabel)
	assert.Equal(t, "fair", doc.Wellness.Band)
	assert.Equal(t, "40.00", doc.Wellness.SavingsRate)

	payload, err := json.Marshal(vacation)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"monthlyContributionNeeded":null`)
}

func TestFormatContribution(t *testing.T) {
	amount, passed := FormatContribution(16331.67314609662)
	require.NotNil(t, amount)
	assert.Equal(t, "16331.67", *amount)
	assert.False(t, passed)

	amount, passed = FormatContribution(planner.RequiredMonthlyContribution(1, 0, 0, 8))
	assert.Nil(t, amount)
	assert.True(t, passed)
}

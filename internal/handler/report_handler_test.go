package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/dafibh/nivesh/nivesh-backend/internal/testutil"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportHandler(store *testutil.MockReportRepository) *ReportHandler {
	plans := service.NewPlanService(testutil.NewMockPlanRepository(), nil)
	projections := service.NewProjectionService(plans, util.FixedClock(2026))
	if store == nil {
		return NewReportHandler(service.NewReportService(projections, nil, 0))
	}
	return NewReportHandler(service.NewReportService(projections, store, 5*time.Minute))
}

func TestExportReport(t *testing.T) {
	e := echo.New()
	store := testutil.NewMockReportRepository()
	handler := setupReportHandler(store)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/reports", "", 3)
	require.NoError(t, handler.Export(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var export service.ReportExport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &export))
	assert.NotEmpty(t, export.ID)
	assert.Contains(t, export.ChartURL, "3/reports/"+export.ID+"/chart.png")
	assert.Contains(t, export.DataURL, "report.json")
	assert.Len(t, store.Objects, 3)
}

func TestExportReport_StorageNotConfigured(t *testing.T) {
	e := echo.New()
	handler := setupReportHandler(nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/reports", "", 3)
	_ = handler.Export(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, ErrorTypeServiceUnavailable, decodeProblem(t, rec).Type)
}

func TestExportReport_UploadFailure(t *testing.T) {
	e := echo.New()
	store := testutil.NewMockReportRepository()
	store.UploadErr = errors.New("bucket unavailable")
	store.FailOnUpload = 2
	handler := setupReportHandler(store)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/reports", "", 3)
	_ = handler.Export(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, store.Objects)
}

func TestExportReport_NoWorkspace(t *testing.T) {
	e := echo.New()
	handler := setupReportHandler(testutil.NewMockReportRepository())

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/reports", "", 0)
	_ = handler.Export(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

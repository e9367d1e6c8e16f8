package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/dafibh/nivesh/nivesh-backend/internal/middleware"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/dafibh/nivesh/nivesh-backend/internal/testutil"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeTokenValidator struct{}

func (routeTokenValidator) ValidateToken(ctx context.Context, token string) (interface{}, error) {
	if token != "good-token" {
		return nil, errors.New("invalid token")
	}
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{Subject: "auth0|routes"},
		CustomClaims:     &middleware.CustomClaims{Email: "routes@example.com"},
	}, nil
}

type routeWorkspaceProvider struct{}

func (routeWorkspaceProvider) GetWorkspaceByAuth0ID(auth0ID string) (int32, error) {
	return 11, nil
}

func setupRouter(t *testing.T) *echo.Echo {
	t.Helper()

	planRepo := testutil.NewMockPlanRepository()
	plans := service.NewPlanService(planRepo, nil)
	projections := service.NewProjectionService(plans, util.FixedClock(2026))
	authService := service.NewAuthService(testutil.NewMockUserRepository(), testutil.NewMockWorkspaceRepository(), planRepo)

	limiter := middleware.NewRateLimiterWithConfig(1, 2)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	RegisterRoutes(e, middleware.NewAuthMiddlewareWith(routeTokenValidator{}, routeWorkspaceProvider{}), limiter, Handlers{
		Auth:       NewAuthHandler(authService),
		Plan:       NewPlanHandler(plans),
		Projection: NewProjectionHandler(projections),
		Report:     NewReportHandler(service.NewReportService(projections, nil, 0)),
	})
	return e
}

func TestRoutes_RequireAuthentication(t *testing.T) {
	e := setupRouter(t)

	for _, path := range []string{"/api/v1/plan", "/api/v1/projections", "/api/v1/projections/wellness"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRoutes_PlanWithToken(t *testing.T) {
	e := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plan", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "50000.00", resp.MonthlyIncome)
}

func TestRoutes_ProjectionsAreRateLimited(t *testing.T) {
	e := setupRouter(t)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projections/wellness", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRoutes_ReportsUnavailableWithoutStorage(t *testing.T) {
	e := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutes_OpenAPISpec(t *testing.T) {
	e := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var spec OpenAPI3Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Contains(t, spec.Paths, "/plan/financials")

	put := spec.Paths["/plan/financials"].(map[string]interface{})["put"].(map[string]interface{})
	assert.Contains(t, put, "requestBody")
	assert.NotContains(t, put, "parameters")
}

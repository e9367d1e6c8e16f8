package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/middleware"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DefaultInflationYears is used when the inflation outlook is requested without a horizon
const DefaultInflationYears = 10

// ProjectionHandler serves the engine's derived figures for the caller's plan
type ProjectionHandler struct {
	projectionService *service.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(projectionService *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// WealthProjectionResponse is the 30-year projection
type WealthProjectionResponse struct {
	BaseYear int                               `json:"baseYear"`
	Points   []service.ProjectionPointDocument `json:"points"`
}

// ExpenseAmountsResponse holds one set of monthly expense amounts
type ExpenseAmountsResponse struct {
	General    string `json:"general"`
	Education  string `json:"education"`
	Healthcare string `json:"healthcare"`
	Food       string `json:"food"`
	Total      string `json:"total"`
}

// InflationRatesResponse holds the per-category annual inflation rates in percent
type InflationRatesResponse struct {
	General    string `json:"general"`
	Education  string `json:"education"`
	Healthcare string `json:"healthcare"`
	Food       string `json:"food"`
}

// InflationOutlookResponse shows today's expenses after the given number of years
type InflationOutlookResponse struct {
	Years     int                    `json:"years"`
	Rates     InflationRatesResponse `json:"rates"`
	Current   ExpenseAmountsResponse `json:"current"`
	Projected ExpenseAmountsResponse `json:"projected"`
}

func toExpenseAmounts(e planner.Expenses) ExpenseAmountsResponse {
	return ExpenseAmountsResponse{
		General:    service.FormatMoney(e.General),
		Education:  service.FormatMoney(e.Education),
		Healthcare: service.FormatMoney(e.Healthcare),
		Food:       service.FormatMoney(e.Food),
		Total:      service.FormatMoney(e.Total()),
	}
}

func formatRate(r planner.AnnualPercentRate) string {
	return decimal.NewFromFloat(float64(r)).StringFixed(2)
}

// GetReport returns the projection, goal computations and wellness in one response
// @Summary Get projection report
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReportDocument
// @Failure 401 {object} ProblemDetails
// @Router /projections [get]
func (h *ProjectionHandler) GetReport(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	report, err := h.projectionService.GetReport(workspaceID)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to compute projections")
	}

	return c.JSON(http.StatusOK, service.NewReportDocument(report, time.Now().UTC()))
}

// GetWealthProjection returns the year-end portfolio values
// @Summary Get wealth projection
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WealthProjectionResponse
// @Router /projections/wealth [get]
func (h *ProjectionHandler) GetWealthProjection(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	points, err := h.projectionService.GetProjection(workspaceID)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to compute wealth projection")
	}

	return c.JSON(http.StatusOK, WealthProjectionResponse{
		BaseYear: h.projectionService.CurrentYear(),
		Points:   service.NewProjectionDocument(points),
	})
}

// GetGoal returns the derived figures of one goal
// @Summary Get goal computation
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} service.GoalDocument
// @Failure 404 {object} ProblemDetails
// @Router /projections/goals/{id} [get]
func (h *ProjectionHandler) GetGoal(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	eval, err := h.projectionService.GetGoalComputation(workspaceID, c.Param("id"))
	if err != nil {
		return planError(c, err, workspaceID, "Failed to compute goal")
	}

	return c.JSON(http.StatusOK, service.NewGoalDocument(eval.Goal, eval.Computation))
}

// GetWellness returns the financial wellness score
// @Summary Get wellness score
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.WellnessDocument
// @Router /projections/wellness [get]
func (h *ProjectionHandler) GetWellness(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	w, err := h.projectionService.GetWellness(workspaceID)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to compute wellness")
	}

	return c.JSON(http.StatusOK, service.NewWellnessDocument(*w))
}

// GetInflationOutlook inflates the current expenses by the default category rates
// @Summary Get expense inflation outlook
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Param years query int false "Years ahead (1-50, default 10)"
// @Success 200 {object} InflationOutlookResponse
// @Failure 400 {object} ProblemDetails
// @Router /projections/inflation [get]
func (h *ProjectionHandler) GetInflationOutlook(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	years := DefaultInflationYears
	if raw := c.QueryParam("years"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > service.MaxInflationYears {
			return NewValidationError(c, "Invalid years", []ValidationError{
				{Field: "years", Message: "Must be a whole number between 1 and 50"},
			})
		}
		years = parsed
	}

	outlook, err := h.projectionService.GetInflationOutlook(workspaceID, years)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to compute inflation outlook")
	}

	return c.JSON(http.StatusOK, InflationOutlookResponse{
		Years: outlook.Years,
		Rates: InflationRatesResponse{
			General:    formatRate(outlook.Rates.General),
			Education:  formatRate(outlook.Rates.Education),
			Healthcare: formatRate(outlook.Rates.Healthcare),
			Food:       formatRate(outlook.Rates.Food),
		},
		Current:   toExpenseAmounts(outlook.Current),
		Projected: toExpenseAmounts(outlook.Projected),
	})
}

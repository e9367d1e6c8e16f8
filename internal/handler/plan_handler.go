package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/middleware"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PlanHandler handles reads and edits of the workspace's plan
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// IncomeSourceResponse represents an income source in API responses
type IncomeSourceResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ExpensesResponse represents the monthly expense categories
type ExpensesResponse struct {
	General    string `json:"general"`
	Education  string `json:"education"`
	Healthcare string `json:"healthcare"`
	Food       string `json:"food"`
	Total      string `json:"total"`
}

// GoalResponse represents a stored goal
type GoalResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount"`
	DeadlineYear  int    `json:"deadlineYear"`
}

// PlanResponse represents the plan in API responses
type PlanResponse struct {
	MonthlyIncome        string                 `json:"monthlyIncome"`
	IncomeSources        []IncomeSourceResponse `json:"incomeSources"`
	IncomeGrowthRate     string                 `json:"incomeGrowthRate"`
	InvestmentReturnRate string                 `json:"investmentReturnRate"`
	MonthlyExpenses      ExpensesResponse       `json:"monthlyExpenses"`
	Goals                []GoalResponse         `json:"goals"`
	UpdatedAt            time.Time              `json:"updatedAt"`
}

func toGoalResponse(g domain.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		DeadlineYear:  g.DeadlineYear,
	}
}

func toPlanResponse(p *domain.Plan) PlanResponse {
	sources := make([]IncomeSourceResponse, len(p.IncomeSources))
	for i, src := range p.IncomeSources {
		sources[i] = IncomeSourceResponse{
			ID:     src.ID.String(),
			Name:   src.Name,
			Amount: src.Amount.StringFixed(2),
		}
	}

	goals := make([]GoalResponse, len(p.Goals))
	for i, g := range p.Goals {
		goals[i] = toGoalResponse(g)
	}

	return PlanResponse{
		MonthlyIncome:        p.MonthlyIncome.StringFixed(2),
		IncomeSources:        sources,
		IncomeGrowthRate:     p.IncomeGrowthRate.StringFixed(2),
		InvestmentReturnRate: p.InvestmentReturnRate.StringFixed(2),
		MonthlyExpenses: ExpensesResponse{
			General:    p.MonthlyExpenses.General.StringFixed(2),
			Education:  p.MonthlyExpenses.Education.StringFixed(2),
			Healthcare: p.MonthlyExpenses.Healthcare.StringFixed(2),
			Food:       p.MonthlyExpenses.Food.StringFixed(2),
			Total:      p.MonthlyExpenses.Total().StringFixed(2),
		},
		Goals:     goals,
		UpdatedAt: p.UpdatedAt,
	}
}

// IncomeSourceRequest is one income source in an update; a missing id creates a new source
type IncomeSourceRequest struct {
	ID     string          `json:"id,omitempty"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// UpdateFinancialsRequest is a partial update; omitted fields are kept.
// incomeSources, when present, replaces the whole list.
type UpdateFinancialsRequest struct {
	IncomeSources        []IncomeSourceRequest `json:"incomeSources"`
	IncomeGrowthRate     *decimal.Decimal      `json:"incomeGrowthRate"`
	InvestmentReturnRate *decimal.Decimal      `json:"investmentReturnRate"`
	MonthlyExpenses      *domain.ExpensesPatch `json:"monthlyExpenses"`
}

// UpdateGoalProgressRequest sets how much has been saved towards a goal
type UpdateGoalProgressRequest struct {
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
}

// UpdateGoalRequest edits a goal; omitted fields are kept
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	DeadlineYear *int             `json:"deadlineYear"`
}

// GetPlan returns the plan, creating the default one on first use
// @Summary Get plan
// @Tags plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlanResponse
// @Failure 401 {object} ProblemDetails
// @Router /plan [get]
func (h *PlanHandler) GetPlan(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	plan, err := h.planService.GetPlan(workspaceID)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to get plan")
	}

	return c.JSON(http.StatusOK, toPlanResponse(plan))
}

// UpdateFinancials updates income sources, expenses and rate assumptions
// @Summary Update financials
// @Tags plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateFinancialsRequest true "Partial update"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ProblemDetails
// @Router /plan/financials [put]
func (h *PlanHandler) UpdateFinancials(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req UpdateFinancialsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	update := domain.FinancialsUpdate{
		IncomeGrowthRate:     req.IncomeGrowthRate,
		InvestmentReturnRate: req.InvestmentReturnRate,
		MonthlyExpenses:      req.MonthlyExpenses,
	}

	if req.IncomeSources != nil {
		update.IncomeSources = make([]domain.IncomeSource, len(req.IncomeSources))
		for i, src := range req.IncomeSources {
			var id uuid.UUID
			if src.ID != "" {
				parsed, err := uuid.Parse(src.ID)
				if err != nil {
					return NewValidationError(c, "Invalid income source id", []ValidationError{
						{Field: "incomeSources.id", Message: "Must be a valid UUID"},
					})
				}
				id = parsed
			}
			update.IncomeSources[i] = domain.IncomeSource{ID: id, Name: src.Name, Amount: src.Amount}
		}
	}

	plan, err := h.planService.UpdateFinancials(workspaceID, update)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to update financials")
	}

	middleware.Logger(c).Info().Int("income_sources", len(plan.IncomeSources)).Msg("Financials updated")
	return c.JSON(http.StatusOK, toPlanResponse(plan))
}

// UpdateGoalProgress records the current amount saved for a goal
// @Summary Update goal progress
// @Tags plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body UpdateGoalProgressRequest true "Current amount"
// @Success 200 {object} GoalResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /plan/goals/{id}/progress [patch]
func (h *PlanHandler) UpdateGoalProgress(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req UpdateGoalProgressRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.CurrentAmount == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "currentAmount", Message: "Current amount is required"},
		})
	}

	goal, err := h.planService.UpdateGoalProgress(workspaceID, c.Param("id"), *req.CurrentAmount)
	if err != nil {
		return planError(c, err, workspaceID, "Failed to update goal progress")
	}

	return c.JSON(http.StatusOK, toGoalResponse(*goal))
}

// UpdateGoal edits a goal's name, target or deadline
// @Summary Update goal
// @Tags plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body UpdateGoalRequest true "Goal fields"
// @Success 200 {object} GoalResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /plan/goals/{id} [put]
func (h *PlanHandler) UpdateGoal(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	goal, err := h.planService.UpdateGoal(workspaceID, c.Param("id"), domain.GoalUpdate{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		DeadlineYear: req.DeadlineYear,
	})
	if err != nil {
		return planError(c, err, workspaceID, "Failed to update goal")
	}

	middleware.Logger(c).Info().Str("goal_id", goal.ID).Msg("Goal updated")
	return c.JSON(http.StatusOK, toGoalResponse(*goal))
}

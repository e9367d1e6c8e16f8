package service

import (
	"errors"
	"strings"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PlanService owns reads and writes of a workspace's plan
type PlanService struct {
	planRepo  domain.PlanRepository
	publisher websocket.EventPublisher
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo domain.PlanRepository, publisher websocket.EventPublisher) *PlanService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &PlanService{
		planRepo:  planRepo,
		publisher: publisher,
	}
}

// GetPlan returns the workspace's plan, creating the default plan on first use
func (s *PlanService) GetPlan(workspaceID int32) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByWorkspace(workspaceID)
	if errors.Is(err, domain.ErrPlanNotFound) {
		log.Info().Int32("workspace_id", workspaceID).Msg("Creating default plan")
		return s.planRepo.Save(domain.DefaultPlan(workspaceID))
	}
	if err != nil {
		return nil, err
	}

	plan.Normalize()
	return plan, nil
}

// UpdateFinancials applies a partial update to income, expenses and rate assumptions.
// Replacing income sources recomputes the monthly income; changing expenses
// recomputes the emergency fund target.
func (s *PlanService) UpdateFinancials(workspaceID int32, update domain.FinancialsUpdate) (*domain.Plan, error) {
	plan, err := s.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}

	if update.IncomeSources != nil {
		sources := make([]domain.IncomeSource, len(update.IncomeSources))
		for i, src := range update.IncomeSources {
			src.Name = strings.TrimSpace(src.Name)
			if src.ID == uuid.Nil {
				src.ID = uuid.New()
			}
			sources[i] = src
		}
		plan.IncomeSources = sources
		plan.RecalculateIncome()
	}

	if update.MonthlyExpenses != nil {
		plan.MonthlyExpenses = update.MonthlyExpenses.Merge(plan.MonthlyExpenses)
		plan.ApplyEmergencyFundTarget()
	}

	if update.IncomeGrowthRate != nil {
		plan.IncomeGrowthRate = *update.IncomeGrowthRate
	}
	if update.InvestmentReturnRate != nil {
		plan.InvestmentReturnRate = *update.InvestmentReturnRate
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.planRepo.Save(plan)
	if err != nil {
		log.Error().Err(err).Int32("workspace_id", workspaceID).Msg("Failed to save plan")
		return nil, err
	}

	s.publisher.Publish(workspaceID, websocket.PlanUpdated(saved))
	return saved, nil
}

// UpdateGoalProgress records how much has been saved towards a goal
func (s *PlanService) UpdateGoalProgress(workspaceID int32, goalID string, currentAmount decimal.Decimal) (*domain.Goal, error) {
	if err := domain.ValidateAmount(currentAmount); err != nil {
		return nil, err
	}

	// Ensures the default plan exists before the targeted update
	if _, err := s.GetPlan(workspaceID); err != nil {
		return nil, err
	}

	goal, err := s.planRepo.UpdateGoalProgress(workspaceID, goalID, currentAmount)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(workspaceID, websocket.GoalUpdated(goal))
	return goal, nil
}

// UpdateGoal edits a goal's name, target or deadline.
// The emergency fund target follows expenses and cannot be set.
func (s *PlanService) UpdateGoal(workspaceID int32, goalID string, update domain.GoalUpdate) (*domain.Goal, error) {
	if goalID == domain.GoalEmergencyFund && update.TargetAmount != nil {
		return nil, domain.ErrDerivedTarget
	}

	plan, err := s.GetPlan(workspaceID)
	if err != nil {
		return nil, err
	}

	idx := plan.FindGoal(goalID)
	if idx < 0 {
		return nil, domain.ErrGoalNotFound
	}

	goal := &plan.Goals[idx]
	if update.Name != nil {
		goal.Name = strings.TrimSpace(*update.Name)
	}
	if update.TargetAmount != nil {
		goal.TargetAmount = *update.TargetAmount
	}
	if update.DeadlineYear != nil {
		goal.DeadlineYear = *update.DeadlineYear
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.planRepo.Save(plan)
	if err != nil {
		log.Error().Err(err).Int32("workspace_id", workspaceID).Str("goal_id", goalID).Msg("Failed to save goal")
		return nil, err
	}

	updated := saved.Goals[saved.FindGoal(goalID)]
	s.publisher.Publish(workspaceID, websocket.GoalUpdated(updated))
	return &updated, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PlanRepository implements domain.PlanRepository using PostgreSQL.
// A plan spans three tables: plans, income_sources and goals.
type PlanRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// GetByWorkspace retrieves a workspace's plan with its income sources and goals
func (r *PlanRepository) GetByWorkspace(workspaceID int32) (*domain.Plan, error) {
	return getPlan(context.Background(), r.pool, workspaceID)
}

// Save writes the whole plan in one transaction, replacing its income sources and goals
func (r *PlanRepository) Save(plan *domain.Plan) (*domain.Plan, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	amounts, err := numerics(
		plan.MonthlyIncome,
		plan.IncomeGrowthRate,
		plan.InvestmentReturnRate,
		plan.MonthlyExpenses.General,
		plan.MonthlyExpenses.Education,
		plan.MonthlyExpenses.Healthcare,
		plan.MonthlyExpenses.Food,
	)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO plans (
			workspace_id, monthly_income, income_growth_rate, investment_return_rate,
			expense_general, expense_education, expense_healthcare, expense_food
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (workspace_id) DO UPDATE
		SET monthly_income = EXCLUDED.monthly_income,
		    income_growth_rate = EXCLUDED.income_growth_rate,
		    investment_return_rate = EXCLUDED.investment_return_rate,
		    expense_general = EXCLUDED.expense_general,
		    expense_education = EXCLUDED.expense_education,
		    expense_healthcare = EXCLUDED.expense_healthcare,
		    expense_food = EXCLUDED.expense_food,
		    updated_at = NOW()`,
		plan.WorkspaceID, amounts[0], amounts[1], amounts[2], amounts[3], amounts[4], amounts[5], amounts[6])
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to upsert plan: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM income_sources WHERE workspace_id = $1`, plan.WorkspaceID)
	batch.Queue(`DELETE FROM goals WHERE workspace_id = $1`, plan.WorkspaceID)

	for i, src := range plan.IncomeSources {
		amount, err := decimalToPgNumeric(src.Amount)
		if err != nil {
			return nil, err
		}
		batch.Queue(`
			INSERT INTO income_sources (id, workspace_id, name, amount, position)
			VALUES ($1, $2, $3, $4, $5)`,
			src.ID, plan.WorkspaceID, src.Name, amount, i)
	}

	for i, g := range plan.Goals {
		values, err := numerics(g.TargetAmount, g.CurrentAmount)
		if err != nil {
			return nil, err
		}
		batch.Queue(`
			INSERT INTO goals (workspace_id, id, name, target_amount, current_amount, deadline_year, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			plan.WorkspaceID, g.ID, g.Name, values[0], values[1], g.DeadlineYear, i)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("failed to write plan children: %w", err)
	}

	saved, err := getPlan(ctx, tx, plan.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateGoalProgress sets the current amount of a single goal
func (r *PlanRepository) UpdateGoalProgress(workspaceID int32, goalID string, currentAmount decimal.Decimal) (*domain.Goal, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(currentAmount)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		UPDATE goals SET current_amount = $3
		WHERE workspace_id = $1 AND id = $2
		RETURNING id, name, target_amount, current_amount, deadline_year`,
		workspaceID, goalID, amount)

	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `UPDATE plans SET updated_at = NOW() WHERE workspace_id = $1`, workspaceID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return goal, nil
}

// ListWorkspaceIDs returns every workspace that has a plan
func (r *PlanRepository) ListWorkspaceIDs() ([]int32, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT workspace_id FROM plans ORDER BY workspace_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int32])
}

func getPlan(ctx context.Context, q querier, workspaceID int32) (*domain.Plan, error) {
	var (
		plan                                 domain.Plan
		income, growth, ret                  pgtype.Numeric
		general, education, healthcare, food pgtype.Numeric
	)

	err := q.QueryRow(ctx, `
		SELECT workspace_id, monthly_income, income_growth_rate, investment_return_rate,
		       expense_general, expense_education, expense_healthcare, expense_food,
		       created_at, updated_at
		FROM plans WHERE workspace_id = $1`, workspaceID).Scan(
		&plan.WorkspaceID, &income, &growth, &ret,
		&general, &education, &healthcare, &food,
		&plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}

	plan.MonthlyIncome = pgNumericToDecimal(income)
	plan.IncomeGrowthRate = pgNumericToDecimal(growth)
	plan.InvestmentReturnRate = pgNumericToDecimal(ret)
	plan.MonthlyExpenses = domain.MonthlyExpenses{
		General:    pgNumericToDecimal(general),
		Education:  pgNumericToDecimal(education),
		Healthcare: pgNumericToDecimal(healthcare),
		Food:       pgNumericToDecimal(food),
	}

	rows, err := q.Query(ctx, `
		SELECT id, name, amount FROM income_sources
		WHERE workspace_id = $1 ORDER BY position`, workspaceID)
	if err != nil {
		return nil, err
	}
	plan.IncomeSources, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IncomeSource, error) {
		var (
			src    domain.IncomeSource
			amount pgtype.Numeric
		)
		if err := row.Scan(&src.ID, &src.Name, &amount); err != nil {
			return src, err
		}
		src.Amount = pgNumericToDecimal(amount)
		return src, nil
	})
	if err != nil {
		return nil, err
	}

	rows, err = q.Query(ctx, `
		SELECT id, name, target_amount, current_amount, deadline_year FROM goals
		WHERE workspace_id = $1 ORDER BY position`, workspaceID)
	if err != nil {
		return nil, err
	}
	plan.Goals, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Goal, error) {
		g, err := scanGoal(row)
		if err != nil {
			return domain.Goal{}, err
		}
		return *g, nil
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		g               domain.Goal
		target, current pgtype.Numeric
		deadline        int32
	)
	if err := row.Scan(&g.ID, &g.Name, &target, &current, &deadline); err != nil {
		return nil, err
	}
	g.TargetAmount = pgNumericToDecimal(target)
	g.CurrentAmount = pgNumericToDecimal(current)
	g.DeadlineYear = int(deadline)
	return &g, nil
}

func numerics(values ...decimal.Decimal) ([]pgtype.Numeric, error) {
	out := make([]pgtype.Numeric, len(values))
	for i, v := range values {
		n, err := decimalToPgNumeric(v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

package repository

import (
	"context"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

type GoalRepository struct {
	db DBTX
}

func NewGoalRepository(db DBTX) *GoalRepository {
	return &GoalRepository{db: db}
}

type UpdateGoalInput struct {
	Type        *string
	TargetValue *float64
	Unit        *string
	StartDate   *time.Time
	TargetDate  *time.Time
	IsActive    *bool
}

const goalColumns = `id, user_id, type, target_value, current_value, unit, start_date, target_date, is_active, created_at, updated_at`

func scanGoal(row rowScanner) (*models.Goal, error) {
	var goal models.Goal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Type,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.Unit,
		&goal.StartDate,
		&goal.TargetDate,
		&goal.IsActive,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &goal, nil
}

func (r *GoalRepository) Create(ctx context.Context, goal models.Goal) (*models.Goal, error) {
	query := `
		INSERT INTO goals (id, user_id, type, target_value, current_value, unit, start_date, target_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + goalColumns
	return scanGoal(r.db.QueryRow(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Type,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Unit,
		goal.StartDate,
		goal.TargetDate,
		goal.IsActive,
	))
}

func (r *GoalRepository) ListByUserID(ctx context.Context, userID string) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanGoal)
}

func (r *GoalRepository) Get(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`
	return scanGoal(r.db.QueryRow(ctx, query, goalID, userID))
}

func (r *GoalRepository) UpdateProgress(ctx context.Context, userID, goalID string, currentValue float64) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET current_value = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING ` + goalColumns
	return scanGoal(r.db.QueryRow(ctx, query, currentValue, goalID, userID))
}

func (r *GoalRepository) UpdatePartial(ctx context.Context, userID, goalID string, req UpdateGoalInput) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET type = COALESCE($1, type),
			target_value = COALESCE($2, target_value),
			unit = COALESCE($3, unit),
			start_date = COALESCE($4, start_date),
			target_date = COALESCE($5, target_date),
			is_active = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING ` + goalColumns
	return scanGoal(r.db.QueryRow(ctx, query,
		req.Type,
		req.TargetValue,
		req.Unit,
		req.StartDate,
		req.TargetDate,
		req.IsActive,
		goalID,
		userID,
	))
}

func (r *GoalRepository) Delete(ctx context.Context, userID, goalID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

type WorkoutPlanRepository struct {
	db DBTX
}

func NewWorkoutPlanRepository(db DBTX) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{db: db}
}

type UpdatePlanInput struct {
	Name            *string
	DurationWeeks   *int
	SessionsPerWeek *int
	Difficulty      *string
	Exercises       []models.PlanExercise
}

const planColumns = `id, user_id, goal_id, name, duration_weeks, sessions_per_week, difficulty, exercises, created_at, updated_at`

func scanWorkoutPlan(row rowScanner) (*models.WorkoutPlan, error) {
	var (
		plan      models.WorkoutPlan
		exercises []byte
	)
	err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.GoalID,
		&plan.Name,
		&plan.DurationWeeks,
		&plan.SessionsPerWeek,
		&plan.Difficulty,
		&exercises,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	plan.Exercises = []models.PlanExercise{}
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &plan.Exercises); err != nil {
			return nil, fmt.Errorf("decode plan exercises: %w", err)
		}
	}
	return &plan, nil
}

func (r *WorkoutPlanRepository) Create(ctx context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error) {
	exercises, err := json.Marshal(nonNilPlanExercises(plan.Exercises))
	if err != nil {
		return nil, fmt.Errorf("encode plan exercises: %w", err)
	}
	query := `
		INSERT INTO workout_plans (id, user_id, goal_id, name, duration_weeks, sessions_per_week, difficulty, exercises)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + planColumns
	return scanWorkoutPlan(r.db.QueryRow(ctx, query,
		plan.ID,
		plan.UserID,
		plan.GoalID,
		plan.Name,
		plan.DurationWeeks,
		plan.SessionsPerWeek,
		plan.Difficulty,
		exercises,
	))
}

func (r *WorkoutPlanRepository) ListByUserID(ctx context.Context, userID string) ([]models.WorkoutPlan, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkoutPlan)
}

func (r *WorkoutPlanRepository) Get(ctx context.Context, userID, planID string) (*models.WorkoutPlan, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plans WHERE id = $1 AND user_id = $2`
	return scanWorkoutPlan(r.db.QueryRow(ctx, query, planID, userID))
}

func (r *WorkoutPlanRepository) UpdatePartial(ctx context.Context, userID, planID string, req UpdatePlanInput) (*models.WorkoutPlan, error) {
	var exercises []byte
	if req.Exercises != nil {
		encoded, err := json.Marshal(req.Exercises)
		if err != nil {
			return nil, fmt.Errorf("encode plan exercises: %w", err)
		}
		exercises = encoded
	}
	query := `
		UPDATE workout_plans
		SET name = COALESCE($1, name),
			duration_weeks = COALESCE($2, duration_weeks),
			sessions_per_week = COALESCE($3, sessions_per_week),
			difficulty = COALESCE($4, difficulty),
			exercises = COALESCE($5::jsonb, exercises),
			updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING ` + planColumns
	return scanWorkoutPlan(r.db.QueryRow(ctx, query,
		req.Name,
		req.DurationWeeks,
		req.SessionsPerWeek,
		req.Difficulty,
		exercises,
		planID,
		userID,
	))
}

func (r *WorkoutPlanRepository) Delete(ctx context.Context, userID, planID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`, planID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nonNilPlanExercises(in []models.PlanExercise) []models.PlanExercise {
	if in == nil {
		return []models.PlanExercise{}
	}
	return in
}

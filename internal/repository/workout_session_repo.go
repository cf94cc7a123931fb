package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

type WorkoutSessionRepository struct {
	db DBTX
}

func NewWorkoutSessionRepository(db DBTX) *WorkoutSessionRepository {
	return &WorkoutSessionRepository{db: db}
}

const sessionColumns = `id, user_id, plan_id, started_at, completed_at, exercises`

func scanWorkoutSession(row rowScanner) (*models.WorkoutSession, error) {
	var (
		session   models.WorkoutSession
		exercises []byte
	)
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.PlanID,
		&session.StartedAt,
		&session.CompletedAt,
		&exercises,
	)
	if err != nil {
		return nil, translateError(err)
	}
	session.Exercises = []models.ExerciseProgress{}
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &session.Exercises); err != nil {
			return nil, fmt.Errorf("decode session exercises: %w", err)
		}
	}
	return &session, nil
}

func encodeProgress(exercises []models.ExerciseProgress) ([]byte, error) {
	if exercises == nil {
		exercises = []models.ExerciseProgress{}
	}
	encoded, err := json.Marshal(exercises)
	if err != nil {
		return nil, fmt.Errorf("encode session exercises: %w", err)
	}
	return encoded, nil
}

func (r *WorkoutSessionRepository) Create(ctx context.Context, session models.WorkoutSession) (*models.WorkoutSession, error) {
	exercises, err := encodeProgress(session.Exercises)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO workout_sessions (id, user_id, plan_id, started_at, exercises)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + sessionColumns
	return scanWorkoutSession(r.db.QueryRow(ctx, query,
		session.ID,
		session.UserID,
		session.PlanID,
		session.StartedAt,
		exercises,
	))
}

func (r *WorkoutSessionRepository) ListByUserID(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE user_id = $1 ORDER BY started_at DESC, id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWorkoutSession)
}

func (r *WorkoutSessionRepository) Get(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE id = $1 AND user_id = $2`
	return scanWorkoutSession(r.db.QueryRow(ctx, query, sessionID, userID))
}

// UpdateExercises only touches sessions that are still open; a completed or
// missing session yields ErrNotFound.
func (r *WorkoutSessionRepository) UpdateExercises(ctx context.Context, userID, sessionID string, exercises []models.ExerciseProgress) (*models.WorkoutSession, error) {
	encoded, err := encodeProgress(exercises)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE workout_sessions
		SET exercises = $1
		WHERE id = $2 AND user_id = $3 AND completed_at IS NULL
		RETURNING ` + sessionColumns
	return scanWorkoutSession(r.db.QueryRow(ctx, query, encoded, sessionID, userID))
}

// Complete keeps the first completion time when called again.
func (r *WorkoutSessionRepository) Complete(ctx context.Context, userID, sessionID string, at time.Time) (*models.WorkoutSession, error) {
	query := `
		UPDATE workout_sessions
		SET completed_at = COALESCE(completed_at, $1)
		WHERE id = $2 AND user_id = $3
		RETURNING ` + sessionColumns
	return scanWorkoutSession(r.db.QueryRow(ctx, query, at, sessionID, userID))
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

type OnboardingRepository struct {
	db TxDB
}

func NewOnboardingRepository(db TxDB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

const onboardingColumns = `user_id, completed, completed_at, experience_level, fitness_goals, available_time, biometrics`

func scanOnboardingRecord(row rowScanner) (*models.OnboardingRecord, error) {
	var (
		record     models.OnboardingRecord
		biometrics []byte
	)
	err := row.Scan(
		&record.UserID,
		&record.Completed,
		&record.CompletedAt,
		&record.ExperienceLevel,
		&record.FitnessGoals,
		&record.AvailableTime,
		&biometrics,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if err := json.Unmarshal(biometrics, &record.Biometrics); err != nil {
		return nil, fmt.Errorf("decode onboarding biometrics: %w", err)
	}
	return &record, nil
}

// Submit stores the record, copies its biometrics onto the profile when one
// exists, and creates the initial goal, all in one transaction. A second
// submission for the same user fails with ErrDuplicate.
func (r *OnboardingRepository) Submit(ctx context.Context, record models.OnboardingRecord, goal *models.Goal) (*models.OnboardingResult, error) {
	biometrics, err := json.Marshal(record.Biometrics)
	if err != nil {
		return nil, fmt.Errorf("encode onboarding biometrics: %w", err)
	}

	result := &models.OnboardingResult{}
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO onboarding_records (user_id, completed, completed_at, experience_level, fitness_goals, available_time, biometrics)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + onboardingColumns
		stored, err := scanOnboardingRecord(tx.QueryRow(ctx, query,
			record.UserID,
			record.Completed,
			record.CompletedAt,
			record.ExperienceLevel,
			record.FitnessGoals,
			record.AvailableTime,
			biometrics,
		))
		if err != nil {
			return err
		}
		result.Onboarding = stored

		if _, err := tx.Exec(ctx,
			`UPDATE user_profiles SET biometrics = $1, updated_at = NOW() WHERE user_id = $2`,
			biometrics, record.UserID,
		); err != nil {
			return fmt.Errorf("update profile biometrics: %w", err)
		}

		if goal != nil {
			created, err := NewGoalRepository(tx).Create(ctx, *goal)
			if err != nil {
				return fmt.Errorf("create onboarding goal: %w", err)
			}
			result.Goal = created
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *OnboardingRepository) GetByUserID(ctx context.Context, userID string) (*models.OnboardingRecord, error) {
	query := `SELECT ` + onboardingColumns + ` FROM onboarding_records WHERE user_id = $1`
	return scanOnboardingRecord(r.db.QueryRow(ctx, query, userID))
}

func (r *OnboardingRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM onboarding_records WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

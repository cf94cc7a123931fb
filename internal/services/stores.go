package services

import (
	"context"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

type ProfileStore interface {
	Create(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdatePartial(ctx context.Context, userID string, req repository.UpdateUserProfileInput) (*models.UserProfile, error)
}

type AccountStore interface {
	DeleteUserData(ctx context.Context, userID string) error
}

type OnboardingStore interface {
	Submit(ctx context.Context, record models.OnboardingRecord, goal *models.Goal) (*models.OnboardingResult, error)
	GetByUserID(ctx context.Context, userID string) (*models.OnboardingRecord, error)
	Delete(ctx context.Context, userID string) error
}

type GoalStore interface {
	Create(ctx context.Context, goal models.Goal) (*models.Goal, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Goal, error)
	Get(ctx context.Context, userID, goalID string) (*models.Goal, error)
	UpdateProgress(ctx context.Context, userID, goalID string, currentValue float64) (*models.Goal, error)
	UpdatePartial(ctx context.Context, userID, goalID string, req repository.UpdateGoalInput) (*models.Goal, error)
	Delete(ctx context.Context, userID, goalID string) error
}

type PlanStore interface {
	Create(ctx context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error)
	ListByUserID(ctx context.Context, userID string) ([]models.WorkoutPlan, error)
	Get(ctx context.Context, userID, planID string) (*models.WorkoutPlan, error)
	UpdatePartial(ctx context.Context, userID, planID string, req repository.UpdatePlanInput) (*models.WorkoutPlan, error)
	Delete(ctx context.Context, userID, planID string) error
}

type SessionStore interface {
	Create(ctx context.Context, session models.WorkoutSession) (*models.WorkoutSession, error)
	ListByUserID(ctx context.Context, userID string) ([]models.WorkoutSession, error)
	Get(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error)
	UpdateExercises(ctx context.Context, userID, sessionID string, exercises []models.ExerciseProgress) (*models.WorkoutSession, error)
	Complete(ctx context.Context, userID, sessionID string, at time.Time) (*models.WorkoutSession, error)
}

// Stores groups the persistence handles a server needs. Both the Postgres
// repositories and memstore provide a full set.
type Stores struct {
	Profiles   ProfileStore
	Accounts   AccountStore
	Onboarding OnboardingStore
	Goals      GoalStore
	Plans      PlanStore
	Sessions   SessionStore
	Ping       func(ctx context.Context) error
}

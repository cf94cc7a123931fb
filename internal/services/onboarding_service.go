package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

const initialGoalHorizon = 90 * 24 * time.Hour

type SubmitOnboardingInput struct {
	ExperienceLevel string
	FitnessGoals    []string
	AvailableTime   int
	Biometrics      models.Biometrics
}

type OnboardingService struct {
	onboarding OnboardingStore
	now        func() time.Time
	newID      func() string
}

func NewOnboardingService(onboarding OnboardingStore) *OnboardingService {
	return &OnboardingService{onboarding: onboarding, now: utcNow, newID: newID}
}

// Submit stores the questionnaire, copies the biometrics onto the profile
// and creates a starter goal from the first fitness goal, all in one write.
// A user can onboard once until Reset.
func (s *OnboardingService) Submit(ctx context.Context, userID string, in SubmitOnboardingInput) (*models.OnboardingResult, error) {
	if len(in.FitnessGoals) == 0 {
		return nil, invalidInput("at least one fitness goal is required")
	}

	now := s.now()
	record := models.OnboardingRecord{
		UserID:          userID,
		Completed:       true,
		CompletedAt:     now,
		ExperienceLevel: in.ExperienceLevel,
		FitnessGoals:    append([]string(nil), in.FitnessGoals...),
		AvailableTime:   in.AvailableTime,
		Biometrics:      in.Biometrics,
	}
	goal := s.initialGoal(userID, in, now)

	result, err := s.onboarding.Submit(ctx, record, &goal)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, conflict("onboarding already completed")
	}
	if err != nil {
		return nil, fmt.Errorf("submit onboarding: %w", err)
	}
	return result, nil
}

func (s *OnboardingService) Status(ctx context.Context, userID string) (*models.OnboardingStatus, error) {
	record, err := s.onboarding.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.OnboardingStatus{Completed: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load onboarding: %w", err)
	}
	return &models.OnboardingStatus{Completed: record.Completed, Onboarding: record}, nil
}

// Reset clears the onboarding record. Goals created by Submit are kept.
func (s *OnboardingService) Reset(ctx context.Context, userID string) error {
	err := s.onboarding.Delete(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	return nil
}

type goalDefault struct {
	target float64
	unit   string
}

var initialGoalDefaults = map[string]goalDefault{
	models.GoalWeightLoss:     {target: 5, unit: "kg"},
	models.GoalMuscleGain:     {target: 3, unit: "kg"},
	models.GoalEndurance:      {target: 30, unit: "minutes"},
	models.GoalFlexibility:    {target: 20, unit: "sessions"},
	models.GoalStrength:       {target: 20, unit: "kg"},
	models.GoalGeneralFitness: {target: 36, unit: "workouts"},
}

func (s *OnboardingService) initialGoal(userID string, in SubmitOnboardingInput, now time.Time) models.Goal {
	goalType := in.FitnessGoals[0]
	def, ok := initialGoalDefaults[goalType]
	if !ok {
		goalType = models.GoalGeneralFitness
		def = initialGoalDefaults[goalType]
	}
	if goalType == models.GoalEndurance && in.AvailableTime > 0 {
		def.target = float64(in.AvailableTime)
	}

	return models.Goal{
		ID:          s.newID(),
		UserID:      userID,
		Type:        goalType,
		TargetValue: def.target,
		Unit:        def.unit,
		StartDate:   now,
		TargetDate:  now.Add(initialGoalHorizon),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

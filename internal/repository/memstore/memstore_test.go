package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

func TestOnboardingSubmitRejectsSecondRecord(t *testing.T) {
	ctx := context.Background()
	store := New()

	first := models.OnboardingRecord{
		UserID:          "u1",
		Completed:       true,
		ExperienceLevel: "beginner",
		FitnessGoals:    []string{"strength"},
		AvailableTime:   30,
		Biometrics:      models.Biometrics{Age: 30, Height: 180, Weight: 80, Gender: "male"},
	}
	_, err := store.Onboarding().Submit(ctx, first, nil)
	require.NoError(t, err)

	second := first
	second.ExperienceLevel = "advanced"
	_, err = store.Onboarding().Submit(ctx, second, nil)
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	stored, err := store.Onboarding().GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "beginner", stored.ExperienceLevel)
}

func TestOnboardingSubmitCopiesBiometricsToProfile(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, err := store.Profiles().Create(ctx, models.UserProfile{UserID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)

	biometrics := models.Biometrics{Age: 41, Height: 170, Weight: 70, Gender: "other"}
	result, err := store.Onboarding().Submit(ctx, models.OnboardingRecord{
		UserID:          "u1",
		ExperienceLevel: "beginner",
		FitnessGoals:    []string{"endurance"},
		AvailableTime:   30,
		Biometrics:      biometrics,
	}, &models.Goal{ID: "g1", UserID: "u1", Type: "endurance", TargetValue: 5, Unit: "km", IsActive: true})
	require.NoError(t, err)
	require.NotNil(t, result.Goal)

	profile, err := store.Profiles().GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, profile.Biometrics)
	assert.Equal(t, biometrics, *profile.Biometrics)

	goals, err := store.Goals().ListByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestGoalsAreScopedByOwner(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, err := store.Goals().Create(ctx, models.Goal{ID: "g1", UserID: "u1", Type: "strength", TargetValue: 1, Unit: "kg"})
	require.NoError(t, err)

	_, err = store.Goals().Get(ctx, "u2", "g1")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.True(t, errors.Is(store.Goals().Delete(ctx, "u2", "g1"), repository.ErrNotFound))

	goals, err := store.Goals().ListByUserID(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestReadsDoNotAliasStoredState(t *testing.T) {
	ctx := context.Background()
	store := New()
	reps := 10
	_, err := store.Plans().Create(ctx, models.WorkoutPlan{
		ID:        "p1",
		UserID:    "u1",
		Exercises: []models.PlanExercise{{ExerciseID: "squat", Sets: 3, Reps: &reps}},
	})
	require.NoError(t, err)

	plan, err := store.Plans().Get(ctx, "u1", "p1")
	require.NoError(t, err)
	*plan.Exercises[0].Reps = 99
	plan.Exercises[0].ExerciseID = "changed"

	again, err := store.Plans().Get(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "squat", again.Exercises[0].ExerciseID)
	assert.Equal(t, 10, *again.Exercises[0].Reps)
}

func TestSessionCompleteIsIdempotentAndLocksExercises(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, err := store.Sessions().Create(ctx, models.WorkoutSession{ID: "s1", UserID: "u1", PlanID: "p1", StartedAt: time.Now()})
	require.NoError(t, err)

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	done, err := store.Sessions().Complete(ctx, "u1", "s1", first)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	again, err := store.Sessions().Complete(ctx, "u1", "s1", first.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(first))

	_, err = store.Sessions().UpdateExercises(ctx, "u1", "s1", []models.ExerciseProgress{{ExerciseID: "squat"}})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDeleteUserDataLeavesOtherUsers(t *testing.T) {
	ctx := context.Background()
	store := New()
	for _, uid := range []string{"u1", "u2"} {
		_, err := store.Profiles().Create(ctx, models.UserProfile{UserID: uid, Email: uid + "@example.com"})
		require.NoError(t, err)
		_, err = store.Goals().Create(ctx, models.Goal{ID: "goal-" + uid, UserID: uid, Type: "strength", TargetValue: 1, Unit: "kg"})
		require.NoError(t, err)
		_, err = store.Plans().Create(ctx, models.WorkoutPlan{ID: "plan-" + uid, UserID: uid})
		require.NoError(t, err)
	}

	require.NoError(t, store.Accounts().DeleteUserData(ctx, "u1"))

	_, err := store.Profiles().GetByUserID(ctx, "u1")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	goals, _ := store.Goals().ListByUserID(ctx, "u1")
	assert.Empty(t, goals)
	plans, _ := store.Plans().ListByUserID(ctx, "u1")
	assert.Empty(t, plans)

	goals, _ = store.Goals().ListByUserID(ctx, "u2")
	assert.Len(t, goals, 1)
}

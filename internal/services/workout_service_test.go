package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c00p75/fitness-league-sub000/internal/catalog"
	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
	"github.com/c00p75/fitness-league-sub000/internal/repository/memstore"
)

type stubRecommender struct {
	result        []models.Exercise
	lastGoalType  string
	lastEquipment []string
}

func (r *stubRecommender) Recommend(goalType, _ string, equipment []string, _ int) []models.Exercise {
	r.lastGoalType = goalType
	r.lastEquipment = equipment
	return r.result
}

func newTestWorkoutService(rec ExerciseRecommender) *WorkoutService {
	store := memstore.New()
	return NewWorkoutService(store.Plans(), store.Sessions(), rec)
}

func generateInput() GeneratePlanInput {
	return GeneratePlanInput{
		GoalID:          "0b6f7c4e-5d2a-4f0e-9d51-6a3f1f1f2b10",
		Name:            "Base building",
		DurationWeeks:   8,
		SessionsPerWeek: 3,
		Difficulty:      models.ExperienceBeginner,
	}
}

func TestGeneratePlanPrescribesByCategory(t *testing.T) {
	rec := &stubRecommender{result: []models.Exercise{
		{ID: "push-up", Category: models.CategoryStrength},
		{ID: "jump-rope", Category: models.CategoryCardio},
	}}
	svc := newTestWorkoutService(rec)

	in := generateInput()
	in.GoalType = models.GoalMuscleGain
	in.Equipment = []string{"dumbbells"}
	plan, err := svc.GeneratePlan(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.Equal(t, models.GoalMuscleGain, rec.lastGoalType)
	assert.Equal(t, []string{"dumbbells"}, rec.lastEquipment)
	require.Len(t, plan.Exercises, 2)

	strength := plan.Exercises[0]
	assert.Equal(t, 3, strength.Sets)
	require.NotNil(t, strength.Reps)
	assert.Equal(t, 10, *strength.Reps)
	assert.Nil(t, strength.Duration)
	assert.Equal(t, 90, strength.RestSeconds)

	cardio := plan.Exercises[1]
	assert.Nil(t, cardio.Reps)
	require.NotNil(t, cardio.Duration)
	assert.Equal(t, 30, *cardio.Duration)
}

func TestGeneratePlanWithNoMatchingExercises(t *testing.T) {
	svc := newTestWorkoutService(&stubRecommender{})

	_, err := svc.GeneratePlan(context.Background(), "user-1", generateInput())
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGeneratePlanFromCatalogPassesOutputRules(t *testing.T) {
	svc := newTestWorkoutService(catalog.New())

	in := generateInput()
	in.Difficulty = models.ExperienceAdvanced
	plan, err := svc.GeneratePlan(context.Background(), "user-1", in)
	require.NoError(t, err)
	assert.NotEmpty(t, plan.Exercises)
	assert.LessOrEqual(t, len(plan.Exercises), planExerciseCount)
	for _, ex := range plan.Exercises {
		assert.True(t, ex.Reps != nil || ex.Duration != nil, ex.ExerciseID)
	}
}

func TestStartSessionSnapshotsPlan(t *testing.T) {
	ctx := context.Background()
	svc := newTestWorkoutService(catalog.New())

	plan, err := svc.GeneratePlan(ctx, "user-1", generateInput())
	require.NoError(t, err)

	session, err := svc.StartSession(ctx, "user-1", plan.ID)
	require.NoError(t, err)
	require.Len(t, session.Exercises, len(plan.Exercises))
	assert.Len(t, session.Exercises[0].Sets, plan.Exercises[0].Sets)
	assert.Equal(t, 1, session.Exercises[0].Sets[0].SetNumber)
	before := models.CloneProgress(session.Exercises)

	reps := 99
	_, err = svc.UpdatePlan(ctx, "user-1", plan.ID, repository.UpdatePlanInput{
		Exercises: []models.PlanExercise{{ExerciseID: "burpee", Sets: 1, Reps: &reps}},
	})
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, "user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, before, got.Exercises)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestWorkoutService(catalog.New())

	plan, err := svc.GeneratePlan(ctx, "user-1", generateInput())
	require.NoError(t, err)
	session, err := svc.StartSession(ctx, "user-1", plan.ID)
	require.NoError(t, err)

	progress := models.CloneProgress(session.Exercises)
	progress[0].Completed = true
	updated, err := svc.UpdateSession(ctx, "user-1", session.ID, progress)
	require.NoError(t, err)
	assert.True(t, updated.Exercises[0].Completed)

	completed, err := svc.CompleteSession(ctx, "user-1", session.ID)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)

	again, err := svc.CompleteSession(ctx, "user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, *completed.CompletedAt, *again.CompletedAt)

	_, err = svc.UpdateSession(ctx, "user-1", session.ID, progress)
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.StartSession(ctx, "user-1", "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "workout plan not found", err.Error())
}

func TestDeletePlanKeepsSessions(t *testing.T) {
	ctx := context.Background()
	svc := newTestWorkoutService(catalog.New())

	plan, err := svc.GeneratePlan(ctx, "user-1", generateInput())
	require.NoError(t, err)
	session, err := svc.StartSession(ctx, "user-1", plan.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlan(ctx, "user-1", plan.ID))
	require.ErrorIs(t, svc.DeletePlan(ctx, "user-1", plan.ID), ErrNotFound)

	sessions, err := svc.ListSessions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ID, sessions[0].ID)
}

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c00p75/fitness-league-sub000/internal/database"
	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

// testPool returns a migrated database. TEST_DB_URL points the tests at an
// existing server; otherwise a throwaway postgres container is started.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	dbURL := os.Getenv("TEST_DB_URL")
	if dbURL == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:16-alpine",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     "fitness",
					"POSTGRES_PASSWORD": "fitness",
					"POSTGRES_DB":       "fitness",
				},
				WaitingFor: wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := container.Terminate(context.Background()); err != nil {
				t.Logf("terminate postgres container: %v", err)
			}
		})

		host, err := container.Host(ctx)
		require.NoError(t, err)
		port, err := container.MappedPort(ctx, "5432")
		require.NoError(t, err)
		dbURL = fmt.Sprintf("postgres://fitness:fitness@%s:%s/fitness?sslmode=disable", host, port.Port())
	}

	cwd, err := os.Getwd()
	require.NoError(t, err)
	dir, err := database.FindMigrationsDir(cwd)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(dbURL, dir, true))

	pool, err := database.Connect(ctx, dbURL, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newGoal(userID string, now time.Time) models.Goal {
	return models.Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        models.GoalStrength,
		TargetValue: 100,
		Unit:        "kg",
		StartDate:   now,
		TargetDate:  now.AddDate(0, 3, 0),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPostgresRepositories(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("goals are scoped to their owner", func(t *testing.T) {
		goals := repository.NewGoalRepository(pool)
		owner := "goal-owner-" + uuid.NewString()

		created, err := goals.Create(ctx, newGoal(owner, now))
		require.NoError(t, err)

		_, err = goals.Get(ctx, "someone-else", created.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		updated, err := goals.UpdateProgress(ctx, owner, created.ID, 40)
		require.NoError(t, err)
		assert.Equal(t, 40.0, updated.CurrentValue)

		inactive := false
		updated, err = goals.UpdatePartial(ctx, owner, created.ID, repository.UpdateGoalInput{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, 40.0, updated.CurrentValue)

		assert.ErrorIs(t, goals.Delete(ctx, "someone-else", created.ID), repository.ErrNotFound)
		require.NoError(t, goals.Delete(ctx, owner, created.ID))

		list, err := goals.ListByUserID(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("second onboarding submission is a duplicate", func(t *testing.T) {
		onboarding := repository.NewOnboardingRepository(pool)
		userID := "onboard-" + uuid.NewString()
		record := models.OnboardingRecord{
			UserID:          userID,
			Completed:       true,
			CompletedAt:     now,
			ExperienceLevel: models.ExperienceBeginner,
			FitnessGoals:    []string{models.GoalStrength},
			AvailableTime:   45,
			Biometrics:      models.Biometrics{Age: 30, Height: 180, Weight: 80, Gender: models.GenderOther},
		}
		goal := newGoal(userID, now)

		result, err := onboarding.Submit(ctx, record, &goal)
		require.NoError(t, err)
		require.NotNil(t, result.Goal)
		assert.Equal(t, goal.ID, result.Goal.ID)

		again := newGoal(userID, now)
		_, err = onboarding.Submit(ctx, record, &again)
		assert.True(t, errors.Is(err, repository.ErrDuplicate))

		goals, err := repository.NewGoalRepository(pool).ListByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, goals, 1, "a rejected submission must not leave a goal behind")

		require.NoError(t, onboarding.Delete(ctx, userID))
		assert.ErrorIs(t, onboarding.Delete(ctx, userID), repository.ErrNotFound)
	})

	t.Run("completed sessions are frozen", func(t *testing.T) {
		sessions := repository.NewWorkoutSessionRepository(pool)
		userID := "session-" + uuid.NewString()

		created, err := sessions.Create(ctx, models.WorkoutSession{
			ID:        uuid.NewString(),
			UserID:    userID,
			PlanID:    uuid.NewString(),
			StartedAt: now,
			Exercises: []models.ExerciseProgress{{ExerciseID: "push-up", Sets: []models.SetRecord{{SetNumber: 1}}}},
		})
		require.NoError(t, err)

		first, err := sessions.Complete(ctx, userID, created.ID, now.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, first.CompletedAt)

		second, err := sessions.Complete(ctx, userID, created.ID, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, first.CompletedAt.Equal(*second.CompletedAt))

		_, err = sessions.UpdateExercises(ctx, userID, created.ID, nil)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("account deletion removes every owned row", func(t *testing.T) {
		userID := "account-" + uuid.NewString()
		profiles := repository.NewUserProfileRepository(pool)
		goals := repository.NewGoalRepository(pool)

		_, err := profiles.Create(ctx, models.UserProfile{UserID: userID, Email: "gone@example.com", CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)
		_, err = goals.Create(ctx, newGoal(userID, now))
		require.NoError(t, err)

		require.NoError(t, repository.NewAccountRepository(pool).DeleteUserData(ctx, userID))

		_, err = profiles.GetByUserID(ctx, userID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		list, err := goals.ListByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

const planExerciseCount = 6

// ExerciseRecommender picks catalog exercises for a goal type and difficulty.
type ExerciseRecommender interface {
	Recommend(goalType, difficulty string, equipment []string, limit int) []models.Exercise
}

type GeneratePlanInput struct {
	GoalID          string
	GoalType        string
	Name            string
	DurationWeeks   int
	SessionsPerWeek int
	Difficulty      string
	Equipment       []string
}

type WorkoutService struct {
	plans    PlanStore
	sessions SessionStore
	catalog  ExerciseRecommender
	now      func() time.Time
	newID    func() string
}

func NewWorkoutService(plans PlanStore, sessions SessionStore, catalog ExerciseRecommender) *WorkoutService {
	return &WorkoutService{
		plans:    plans,
		sessions: sessions,
		catalog:  catalog,
		now:      utcNow,
		newID:    newID,
	}
}

type prescription struct {
	sets     int
	reps     int
	duration int
	rest     int
}

var prescriptions = map[string]prescription{
	models.ExperienceBeginner:     {sets: 3, reps: 10, duration: 30, rest: 90},
	models.ExperienceIntermediate: {sets: 4, reps: 12, duration: 45, rest: 60},
	models.ExperienceAdvanced:     {sets: 5, reps: 15, duration: 60, rest: 45},
}

// timed categories are prescribed by duration instead of reps.
var timedCategories = map[string]bool{
	models.CategoryCardio:      true,
	models.CategoryFlexibility: true,
}

// GeneratePlan builds a plan from the catalog. The goal id is stored as
// given; it is not checked against the goals store.
func (s *WorkoutService) GeneratePlan(ctx context.Context, userID string, in GeneratePlanInput) (*models.WorkoutPlan, error) {
	picked := s.catalog.Recommend(in.GoalType, in.Difficulty, in.Equipment, planExerciseCount)
	if len(picked) == 0 {
		return nil, invalidInput("no exercises match the requested difficulty and equipment")
	}

	rx, ok := prescriptions[in.Difficulty]
	if !ok {
		rx = prescriptions[models.ExperienceBeginner]
	}
	exercises := make([]models.PlanExercise, 0, len(picked))
	for _, ex := range picked {
		item := models.PlanExercise{ExerciseID: ex.ID, Sets: rx.sets, RestSeconds: rx.rest}
		if timedCategories[ex.Category] {
			duration := rx.duration
			item.Duration = &duration
		} else {
			reps := rx.reps
			item.Reps = &reps
		}
		exercises = append(exercises, item)
	}

	now := s.now()
	plan, err := s.plans.Create(ctx, models.WorkoutPlan{
		ID:              s.newID(),
		UserID:          userID,
		GoalID:          in.GoalID,
		Name:            in.Name,
		DurationWeeks:   in.DurationWeeks,
		SessionsPerWeek: in.SessionsPerWeek,
		Difficulty:      in.Difficulty,
		Exercises:       exercises,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("create workout plan: %w", err)
	}
	return plan, nil
}

func (s *WorkoutService) ListPlans(ctx context.Context, userID string) ([]models.WorkoutPlan, error) {
	plans, err := s.plans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return plans, nil
}

func (s *WorkoutService) GetPlan(ctx context.Context, userID, planID string) (*models.WorkoutPlan, error) {
	plan, err := s.plans.Get(ctx, userID, planID)
	if err != nil {
		return nil, lookupError(err, "workout plan")
	}
	return plan, nil
}

func (s *WorkoutService) UpdatePlan(ctx context.Context, userID, planID string, req repository.UpdatePlanInput) (*models.WorkoutPlan, error) {
	plan, err := s.plans.UpdatePartial(ctx, userID, planID, req)
	if err != nil {
		return nil, lookupError(err, "workout plan")
	}
	return plan, nil
}

// DeletePlan removes the plan. Sessions started from it keep their snapshot.
func (s *WorkoutService) DeletePlan(ctx context.Context, userID, planID string) error {
	if err := s.plans.Delete(ctx, userID, planID); err != nil {
		return lookupError(err, "workout plan")
	}
	return nil
}

// StartSession snapshots the plan's exercises into a new session. Later plan
// edits never reach the session.
func (s *WorkoutService) StartSession(ctx context.Context, userID, planID string) (*models.WorkoutSession, error) {
	plan, err := s.plans.Get(ctx, userID, planID)
	if err != nil {
		return nil, lookupError(err, "workout plan")
	}

	session, err := s.sessions.Create(ctx, models.WorkoutSession{
		ID:        s.newID(),
		UserID:    userID,
		PlanID:    plan.ID,
		StartedAt: s.now(),
		Exercises: snapshotExercises(plan.Exercises),
	})
	if err != nil {
		return nil, fmt.Errorf("start workout session: %w", err)
	}
	return session, nil
}

func (s *WorkoutService) UpdateSession(ctx context.Context, userID, sessionID string, exercises []models.ExerciseProgress) (*models.WorkoutSession, error) {
	current, err := s.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, lookupError(err, "workout session")
	}
	if current.IsCompleted() {
		return nil, conflict("workout session is already completed")
	}

	session, err := s.sessions.UpdateExercises(ctx, userID, sessionID, models.CloneProgress(exercises))
	if errors.Is(err, repository.ErrNotFound) {
		// Completed between the read and the write.
		return nil, conflict("workout session is already completed")
	}
	if err != nil {
		return nil, fmt.Errorf("update workout session: %w", err)
	}
	return session, nil
}

// CompleteSession stamps completedAt once; repeated calls return the session
// unchanged.
func (s *WorkoutService) CompleteSession(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error) {
	session, err := s.sessions.Complete(ctx, userID, sessionID, s.now())
	if err != nil {
		return nil, lookupError(err, "workout session")
	}
	return session, nil
}

func (s *WorkoutService) ListSessions(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	sessions, err := s.sessions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}
	return sessions, nil
}

func (s *WorkoutService) GetSession(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error) {
	session, err := s.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, lookupError(err, "workout session")
	}
	return session, nil
}

func snapshotExercises(planned []models.PlanExercise) []models.ExerciseProgress {
	out := make([]models.ExerciseProgress, 0, len(planned))
	for _, ex := range planned {
		progress := models.ExerciseProgress{ExerciseID: ex.ExerciseID, Sets: make([]models.SetRecord, ex.Sets)}
		for i := range progress.Sets {
			set := models.SetRecord{SetNumber: i + 1}
			if ex.Reps != nil {
				reps := *ex.Reps
				set.Reps = &reps
			}
			if ex.Duration != nil {
				duration := *ex.Duration
				set.Duration = &duration
			}
			progress.Sets[i] = set
		}
		out = append(out, progress)
	}
	return out
}

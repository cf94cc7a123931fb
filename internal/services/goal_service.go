package services

import (
	"context"
	"fmt"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

type CreateGoalInput struct {
	Type        string
	TargetValue float64
	Unit        string
	StartDate   *time.Time
	TargetDate  time.Time
}

type GoalService struct {
	goals GoalStore
	now   func() time.Time
	newID func() string
}

func NewGoalService(goals GoalStore) *GoalService {
	return &GoalService{goals: goals, now: utcNow, newID: newID}
}

func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	goal, err := s.goals.Get(ctx, userID, goalID)
	if err != nil {
		return nil, lookupError(err, "goal")
	}
	return goal, nil
}

func (s *GoalService) CreateGoal(ctx context.Context, userID string, in CreateGoalInput) (*models.Goal, error) {
	now := s.now()
	start := now
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if !in.TargetDate.After(start) {
		return nil, invalidInput("targetDate must be after startDate")
	}

	goal, err := s.goals.Create(ctx, models.Goal{
		ID:          s.newID(),
		UserID:      userID,
		Type:        in.Type,
		TargetValue: in.TargetValue,
		Unit:        in.Unit,
		StartDate:   start,
		TargetDate:  in.TargetDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

// UpdateProgress records the current value. Reaching the target does not
// deactivate the goal.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, currentValue float64) (*models.Goal, error) {
	goal, err := s.goals.UpdateProgress(ctx, userID, goalID, currentValue)
	if err != nil {
		return nil, lookupError(err, "goal")
	}
	return goal, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID string, req repository.UpdateGoalInput) (*models.Goal, error) {
	if req.StartDate != nil || req.TargetDate != nil {
		current, err := s.goals.Get(ctx, userID, goalID)
		if err != nil {
			return nil, lookupError(err, "goal")
		}
		start, target := current.StartDate, current.TargetDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.TargetDate != nil {
			target = *req.TargetDate
		}
		if !target.After(start) {
			return nil, invalidInput("targetDate must be after startDate")
		}
	}

	goal, err := s.goals.UpdatePartial(ctx, userID, goalID, req)
	if err != nil {
		return nil, lookupError(err, "goal")
	}
	return goal, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := s.goals.Delete(ctx, userID, goalID); err != nil {
		return lookupError(err, "goal")
	}
	return nil
}

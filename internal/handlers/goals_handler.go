package handlers

import (
	"context"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

type goalService interface {
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*models.Goal, error)
	CreateGoal(ctx context.Context, userID string, in services.CreateGoalInput) (*models.Goal, error)
	UpdateProgress(ctx context.Context, userID, goalID string, currentValue float64) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, req repository.UpdateGoalInput) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

type GoalsHandler struct {
	goals goalService
}

func NewGoalsHandler(goals goalService) *GoalsHandler {
	return &GoalsHandler{goals: goals}
}

func (h *GoalsHandler) Procedures() rpc.Namespace {
	return rpc.Namespace{
		"getGoals":           rpc.ProtectedQuery(h.getGoals),
		"getGoal":            rpc.ProtectedQuery(h.getGoal),
		"createGoal":         rpc.ProtectedMutation(h.createGoal),
		"updateGoalProgress": rpc.ProtectedMutation(h.updateGoalProgress),
		"updateGoal":         rpc.ProtectedMutation(h.updateGoal),
		"deleteGoal":         rpc.ProtectedMutation(h.deleteGoal),
	}
}

func (h *GoalsHandler) getGoals(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) ([]models.Goal, error) {
	goals, err := h.goals.ListGoals(ctx, ac.User.UID)
	return goals, mapServiceError(err)
}

func (h *GoalsHandler) getGoal(ctx context.Context, ac *rpc.AuthedContext, in schema.GoalIDInput) (*models.Goal, error) {
	goal, err := h.goals.GetGoal(ctx, ac.User.UID, in.GoalID)
	return goal, mapServiceError(err)
}

func (h *GoalsHandler) createGoal(ctx context.Context, ac *rpc.AuthedContext, in schema.CreateGoalInput) (*models.Goal, error) {
	goal, err := h.goals.CreateGoal(ctx, ac.User.UID, services.CreateGoalInput{
		Type:        in.Type,
		TargetValue: in.TargetValue,
		Unit:        in.Unit,
		StartDate:   in.StartDate,
		TargetDate:  in.TargetDate,
	})
	return goal, mapServiceError(err)
}

func (h *GoalsHandler) updateGoalProgress(ctx context.Context, ac *rpc.AuthedContext, in schema.UpdateGoalProgressInput) (*models.Goal, error) {
	goal, err := h.goals.UpdateProgress(ctx, ac.User.UID, in.GoalID, *in.CurrentValue)
	return goal, mapServiceError(err)
}

func (h *GoalsHandler) updateGoal(ctx context.Context, ac *rpc.AuthedContext, in schema.UpdateGoalInput) (*models.Goal, error) {
	goal, err := h.goals.UpdateGoal(ctx, ac.User.UID, in.GoalID, repository.UpdateGoalInput{
		Type:        in.Type,
		TargetValue: in.TargetValue,
		Unit:        in.Unit,
		StartDate:   in.StartDate,
		TargetDate:  in.TargetDate,
		IsActive:    in.IsActive,
	})
	return goal, mapServiceError(err)
}

func (h *GoalsHandler) deleteGoal(ctx context.Context, ac *rpc.AuthedContext, in schema.GoalIDInput) (models.SuccessResult, error) {
	if err := h.goals.DeleteGoal(ctx, ac.User.UID, in.GoalID); err != nil {
		return models.SuccessResult{}, mapServiceError(err)
	}
	return models.SuccessResult{Success: true}, nil
}

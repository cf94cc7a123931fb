package handlers

import (
	"context"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

type workoutService interface {
	GeneratePlan(ctx context.Context, userID string, in services.GeneratePlanInput) (*models.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID string) ([]models.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID, planID string) (*models.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, userID, planID string, req repository.UpdatePlanInput) (*models.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID string) error
	StartSession(ctx context.Context, userID, planID string) (*models.WorkoutSession, error)
	UpdateSession(ctx context.Context, userID, sessionID string, exercises []models.ExerciseProgress) (*models.WorkoutSession, error)
	CompleteSession(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error)
	ListSessions(ctx context.Context, userID string) ([]models.WorkoutSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (*models.WorkoutSession, error)
}

type WorkoutsHandler struct {
	workouts workoutService
}

func NewWorkoutsHandler(workouts workoutService) *WorkoutsHandler {
	return &WorkoutsHandler{workouts: workouts}
}

func (h *WorkoutsHandler) Procedures() rpc.Namespace {
	return rpc.Namespace{
		"generatePlan":    rpc.ProtectedMutation(h.generatePlan),
		"getPlans":        rpc.ProtectedQuery(h.getPlans),
		"getPlan":         rpc.ProtectedQuery(h.getPlan),
		"updatePlan":      rpc.ProtectedMutation(h.updatePlan),
		"deletePlan":      rpc.ProtectedMutation(h.deletePlan),
		"startSession":    rpc.ProtectedMutation(h.startSession),
		"updateSession":   rpc.ProtectedMutation(h.updateSession),
		"completeSession": rpc.ProtectedMutation(h.completeSession),
		"getSessions":     rpc.ProtectedQuery(h.getSessions),
		"getSession":      rpc.ProtectedQuery(h.getSession),
	}
}

func (h *WorkoutsHandler) generatePlan(ctx context.Context, ac *rpc.AuthedContext, in schema.GeneratePlanInput) (*models.WorkoutPlan, error) {
	req := services.GeneratePlanInput{
		GoalID:          in.GoalID,
		Name:            in.Name,
		DurationWeeks:   in.DurationWeeks,
		SessionsPerWeek: in.SessionsPerWeek,
		Difficulty:      in.Difficulty,
		Equipment:       in.Equipment,
	}
	if in.GoalType != nil {
		req.GoalType = *in.GoalType
	}
	plan, err := h.workouts.GeneratePlan(ctx, ac.User.UID, req)
	return plan, mapServiceError(err)
}

func (h *WorkoutsHandler) getPlans(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) ([]models.WorkoutPlan, error) {
	plans, err := h.workouts.ListPlans(ctx, ac.User.UID)
	return plans, mapServiceError(err)
}

func (h *WorkoutsHandler) getPlan(ctx context.Context, ac *rpc.AuthedContext, in schema.PlanIDInput) (*models.WorkoutPlan, error) {
	plan, err := h.workouts.GetPlan(ctx, ac.User.UID, in.PlanID)
	return plan, mapServiceError(err)
}

func (h *WorkoutsHandler) updatePlan(ctx context.Context, ac *rpc.AuthedContext, in schema.UpdatePlanInput) (*models.WorkoutPlan, error) {
	plan, err := h.workouts.UpdatePlan(ctx, ac.User.UID, in.PlanID, repository.UpdatePlanInput{
		Name:            in.Name,
		DurationWeeks:   in.DurationWeeks,
		SessionsPerWeek: in.SessionsPerWeek,
		Difficulty:      in.Difficulty,
		Exercises:       in.Exercises,
	})
	return plan, mapServiceError(err)
}

func (h *WorkoutsHandler) deletePlan(ctx context.Context, ac *rpc.AuthedContext, in schema.PlanIDInput) (models.SuccessResult, error) {
	if err := h.workouts.DeletePlan(ctx, ac.User.UID, in.PlanID); err != nil {
		return models.SuccessResult{}, mapServiceError(err)
	}
	return models.SuccessResult{Success: true}, nil
}

func (h *WorkoutsHandler) startSession(ctx context.Context, ac *rpc.AuthedContext, in schema.PlanIDInput) (*models.WorkoutSession, error) {
	session, err := h.workouts.StartSession(ctx, ac.User.UID, in.PlanID)
	return session, mapServiceError(err)
}

func (h *WorkoutsHandler) updateSession(ctx context.Context, ac *rpc.AuthedContext, in schema.UpdateSessionInput) (*models.WorkoutSession, error) {
	session, err := h.workouts.UpdateSession(ctx, ac.User.UID, in.SessionID, in.Exercises)
	return session, mapServiceError(err)
}

func (h *WorkoutsHandler) completeSession(ctx context.Context, ac *rpc.AuthedContext, in schema.SessionIDInput) (*models.WorkoutSession, error) {
	session, err := h.workouts.CompleteSession(ctx, ac.User.UID, in.SessionID)
	return session, mapServiceError(err)
}

func (h *WorkoutsHandler) getSessions(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) ([]models.WorkoutSession, error) {
	sessions, err := h.workouts.ListSessions(ctx, ac.User.UID)
	return sessions, mapServiceError(err)
}

func (h *WorkoutsHandler) getSession(ctx context.Context, ac *rpc.AuthedContext, in schema.SessionIDInput) (*models.WorkoutSession, error) {
	session, err := h.workouts.GetSession(ctx, ac.User.UID, in.SessionID)
	return session, mapServiceError(err)
}

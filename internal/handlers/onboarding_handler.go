package handlers

import (
	"context"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

type onboardingService interface {
	Submit(ctx context.Context, userID string, in services.SubmitOnboardingInput) (*models.OnboardingResult, error)
	Status(ctx context.Context, userID string) (*models.OnboardingStatus, error)
	Reset(ctx context.Context, userID string) error
}

type OnboardingHandler struct {
	onboarding onboardingService
}

func NewOnboardingHandler(onboarding onboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding}
}

func (h *OnboardingHandler) Procedures() rpc.Namespace {
	return rpc.Namespace{
		"submitOnboarding":    rpc.ProtectedMutation(h.submitOnboarding),
		"getOnboardingStatus": rpc.ProtectedQuery(h.getOnboardingStatus),
		"resetOnboarding":     rpc.ProtectedMutation(h.resetOnboarding),
	}
}

func (h *OnboardingHandler) submitOnboarding(ctx context.Context, ac *rpc.AuthedContext, in schema.SubmitOnboardingInput) (*models.OnboardingResult, error) {
	result, err := h.onboarding.Submit(ctx, ac.User.UID, services.SubmitOnboardingInput{
		ExperienceLevel: in.ExperienceLevel,
		FitnessGoals:    in.FitnessGoals,
		AvailableTime:   in.AvailableTime,
		Biometrics:      in.Biometrics,
	})
	return result, mapServiceError(err)
}

func (h *OnboardingHandler) getOnboardingStatus(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) (*models.OnboardingStatus, error) {
	status, err := h.onboarding.Status(ctx, ac.User.UID)
	return status, mapServiceError(err)
}

// resetOnboarding succeeds whether or not a record existed.
func (h *OnboardingHandler) resetOnboarding(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) (models.SuccessResult, error) {
	if err := h.onboarding.Reset(ctx, ac.User.UID); err != nil {
		return models.SuccessResult{}, mapServiceError(err)
	}
	return models.SuccessResult{Success: true}, nil
}

package handlers

import (
	"context"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

type accountService interface {
	CreateProfile(ctx context.Context, userID, email string, displayName *string) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req repository.UpdateUserProfileInput) (*models.UserProfile, error)
	SignUp(ctx context.Context, email, password string) (*models.SignUpResult, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type AuthHandler struct {
	accounts accountService
}

func NewAuthHandler(accounts accountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Procedures is the auth namespace. signUp is the only public entry.
func (h *AuthHandler) Procedures() rpc.Namespace {
	return rpc.Namespace{
		"getCurrentUser":    rpc.ProtectedQuery(h.getCurrentUser),
		"createUserProfile": rpc.ProtectedMutation(h.createUserProfile),
		"getUserProfile":    rpc.ProtectedQuery(h.getUserProfile),
		"updateUserProfile": rpc.ProtectedMutation(h.updateUserProfile),
		"deleteAccount":     rpc.ProtectedMutation(h.deleteAccount),
		"signUp":            rpc.PublicMutation(h.signUp),
	}
}

func (h *AuthHandler) getCurrentUser(_ context.Context, ac *rpc.AuthedContext, _ schema.Empty) (models.Identity, error) {
	return ac.User, nil
}

func (h *AuthHandler) createUserProfile(ctx context.Context, ac *rpc.AuthedContext, in schema.CreateUserProfileInput) (*models.UserProfile, error) {
	profile, err := h.accounts.CreateProfile(ctx, ac.User.UID, in.Email, in.DisplayName)
	return profile, mapServiceError(err)
}

func (h *AuthHandler) getUserProfile(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) (*models.UserProfile, error) {
	profile, err := h.accounts.GetProfile(ctx, ac.User.UID)
	return profile, mapServiceError(err)
}

func (h *AuthHandler) updateUserProfile(ctx context.Context, ac *rpc.AuthedContext, in schema.UpdateUserProfileInput) (*models.UserProfile, error) {
	profile, err := h.accounts.UpdateProfile(ctx, ac.User.UID, repository.UpdateUserProfileInput{
		DisplayName: in.DisplayName,
		Biometrics:  in.Biometrics,
	})
	return profile, mapServiceError(err)
}

func (h *AuthHandler) deleteAccount(ctx context.Context, ac *rpc.AuthedContext, _ schema.Empty) (models.SuccessResult, error) {
	if err := h.accounts.DeleteAccount(ctx, ac.User.UID); err != nil {
		return models.SuccessResult{}, mapServiceError(err)
	}
	ac.Logger.Info().Str("user_id", ac.User.UID).Msg("account deleted")
	return models.SuccessResult{Success: true}, nil
}

func (h *AuthHandler) signUp(ctx context.Context, _ *rpc.Context, in schema.SignUpInput) (*models.SignUpResult, error) {
	result, err := h.accounts.SignUp(ctx, in.Email, in.Password)
	return result, mapServiceError(err)
}

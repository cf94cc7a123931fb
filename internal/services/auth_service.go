package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/identity"
	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

const (
	avatarFolder = "avatars"
	// Matches the profile's displayName bound, which counts runes.
	maxDisplayNameLength = 80
)

// IdentityProvider is the slice of the identity client the account flows need.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*models.SignUpResult, error)
	DeleteUser(ctx context.Context, uid string) error
}

type AuthService struct {
	profiles ProfileStore
	accounts AccountStore
	identity IdentityProvider
	storage  StorageService
	now      func() time.Time
}

// NewAuthService wires the account flows. identity and storage may be nil,
// in which case sign-up and avatar uploads are unavailable.
func NewAuthService(profiles ProfileStore, accounts AccountStore, identity IdentityProvider, storage StorageService) *AuthService {
	return &AuthService{
		profiles: profiles,
		accounts: accounts,
		identity: identity,
		storage:  storage,
		now:      utcNow,
	}
}

func (s *AuthService) CreateProfile(ctx context.Context, userID, email string, displayName *string) (*models.UserProfile, error) {
	name := defaultDisplayName(email)
	if displayName != nil && strings.TrimSpace(*displayName) != "" {
		name = strings.TrimSpace(*displayName)
	}

	now := s.now()
	profile, err := s.profiles.Create(ctx, models.UserProfile{
		UserID:      userID,
		Email:       strings.TrimSpace(email),
		DisplayName: name,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, conflict("user profile already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create user profile: %w", err)
	}
	return profile, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "user profile")
	}
	return profile, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req repository.UpdateUserProfileInput) (*models.UserProfile, error) {
	if req.DisplayName != nil {
		trimmed := strings.TrimSpace(*req.DisplayName)
		req.DisplayName = &trimmed
	}
	profile, err := s.profiles.UpdatePartial(ctx, userID, req)
	if err != nil {
		return nil, lookupError(err, "user profile")
	}
	return profile, nil
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.SignUpResult, error) {
	if s.identity == nil {
		return nil, identity.ErrNotConfigured
	}
	result, err := s.identity.SignUp(ctx, strings.TrimSpace(email), password)
	switch {
	case errors.Is(err, identity.ErrAlreadyRegistered):
		return nil, conflict("email already registered")
	case errors.Is(err, identity.ErrRejected):
		return nil, invalidInput("%s", strings.TrimPrefix(err.Error(), identity.ErrRejected.Error()+": "))
	case err != nil:
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return result, nil
}

// DeleteAccount removes every row owned by userID in one transaction, then
// the avatar object and the identity. The external deletions run after the
// commit; a failure there is returned with the data already gone.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	var avatarURL string
	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if profile.AvatarURL != nil {
			avatarURL = *profile.AvatarURL
		}
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("load user profile: %w", err)
	}

	if err := s.accounts.DeleteUserData(ctx, userID); err != nil {
		return fmt.Errorf("delete account data: %w", err)
	}

	var errs []error
	if avatarURL != "" && s.storage != nil {
		if err := s.storage.DeleteFile(ctx, avatarURL); err != nil {
			errs = append(errs, fmt.Errorf("delete avatar: %w", err))
		}
	}
	if s.identity != nil {
		if err := s.identity.DeleteUser(ctx, userID); err != nil {
			errs = append(errs, fmt.Errorf("delete identity: %w", err))
		}
	}
	return errors.Join(errs...)
}

// UploadAvatar stores file under a fresh object name and points the profile
// at it. ext includes the leading dot.
func (s *AuthService) UploadAvatar(ctx context.Context, userID string, file io.Reader, ext string) (*models.UserProfile, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	current, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "user profile")
	}

	filename := fmt.Sprintf("%s-%d%s", userID, s.now().UnixNano(), strings.ToLower(ext))
	avatarURL, err := s.storage.UploadFile(ctx, file, filename, avatarFolder)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	profile, err := s.profiles.UpdatePartial(ctx, userID, repository.UpdateUserProfileInput{AvatarURL: &avatarURL})
	if err != nil {
		err = lookupError(err, "user profile")
		if cleanupErr := s.storage.DeleteFile(ctx, avatarURL); cleanupErr != nil {
			return nil, errors.Join(err, fmt.Errorf("cleanup failed: %w", cleanupErr))
		}
		return nil, err
	}

	// The profile no longer references the old object; a failed delete only
	// leaves it orphaned in the bucket.
	if current.AvatarURL != nil && *current.AvatarURL != "" && *current.AvatarURL != avatarURL {
		_ = s.storage.DeleteFile(ctx, *current.AvatarURL)
	}
	return profile, nil
}

func defaultDisplayName(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	if runes := []rune(local); len(runes) > maxDisplayNameLength {
		local = string(runes[:maxDisplayNameLength])
	}
	return local
}

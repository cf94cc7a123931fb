package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

type UpdateUserProfileInput struct {
	DisplayName *string
	AvatarURL   *string
	Biometrics  *models.Biometrics
}

const profileColumns = `user_id, email, display_name, avatar_url, biometrics, created_at, updated_at`

func scanUserProfile(row rowScanner) (*models.UserProfile, error) {
	var (
		profile    models.UserProfile
		biometrics []byte
	)
	err := row.Scan(
		&profile.UserID,
		&profile.Email,
		&profile.DisplayName,
		&profile.AvatarURL,
		&biometrics,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if len(biometrics) > 0 {
		var b models.Biometrics
		if err := json.Unmarshal(biometrics, &b); err != nil {
			return nil, fmt.Errorf("decode profile biometrics: %w", err)
		}
		profile.Biometrics = &b
	}
	return &profile, nil
}

func (r *UserProfileRepository) Create(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	biometrics, err := encodeOptionalJSON(profile.Biometrics)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO user_profiles (user_id, email, display_name, avatar_url, biometrics)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + profileColumns
	return scanUserProfile(r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.Email,
		profile.DisplayName,
		profile.AvatarURL,
		biometrics,
	))
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`
	return scanUserProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *UserProfileRepository) UpdatePartial(ctx context.Context, userID string, req UpdateUserProfileInput) (*models.UserProfile, error) {
	biometrics, err := encodeOptionalJSON(req.Biometrics)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE user_profiles
		SET display_name = COALESCE($1, display_name),
			avatar_url = COALESCE($2, avatar_url),
			biometrics = COALESCE($3::jsonb, biometrics),
			updated_at = NOW()
		WHERE user_id = $4
		RETURNING ` + profileColumns
	return scanUserProfile(r.db.QueryRow(ctx, query,
		req.DisplayName,
		req.AvatarURL,
		biometrics,
		userID,
	))
}

// encodeOptionalJSON returns nil for a nil pointer so the column stays NULL.
func encodeOptionalJSON[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return encoded, nil
}

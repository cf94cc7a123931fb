package schema

import "github.com/c00p75/fitness-league-sub000/internal/models"

// Empty is the input of procedures that take no arguments.
type Empty struct{}

type CreateUserProfileInput struct {
	Email       string  `json:"email" validate:"required,email"`
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,min=1,max=80"`
}

type UpdateUserProfileInput struct {
	DisplayName *string            `json:"displayName,omitempty" validate:"omitempty,min=1,max=80"`
	Biometrics  *models.Biometrics `json:"biometrics,omitempty"`
}

type SignUpInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

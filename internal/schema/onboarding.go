package schema

import "github.com/c00p75/fitness-league-sub000/internal/models"

type SubmitOnboardingInput struct {
	ExperienceLevel string            `json:"experienceLevel" validate:"required,oneof=beginner intermediate advanced"`
	FitnessGoals    []string          `json:"fitnessGoals" validate:"required,min=1,max=6,unique,dive,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	AvailableTime   int               `json:"availableTime" validate:"min=10,max=180"`
	Biometrics      models.Biometrics `json:"biometrics"`
}

package models

import "time"

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

type OnboardingRecord struct {
	UserID          string     `json:"userId" validate:"required"`
	Completed       bool       `json:"completed"`
	CompletedAt     time.Time  `json:"completedAt" validate:"required"`
	ExperienceLevel string     `json:"experienceLevel" validate:"required,oneof=beginner intermediate advanced"`
	FitnessGoals    []string   `json:"fitnessGoals" validate:"min=1,max=6,unique,dive,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	AvailableTime   int        `json:"availableTime" validate:"min=10,max=180"`
	Biometrics      Biometrics `json:"biometrics"`
}

type OnboardingStatus struct {
	Completed  bool              `json:"completed"`
	Onboarding *OnboardingRecord `json:"onboarding,omitempty"`
}

type OnboardingResult struct {
	Onboarding *OnboardingRecord `json:"onboarding"`
	Goal       *Goal             `json:"goal"`
}

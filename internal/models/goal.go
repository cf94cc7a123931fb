package models

import "time"

const (
	GoalWeightLoss     = "weight_loss"
	GoalMuscleGain     = "muscle_gain"
	GoalEndurance      = "endurance"
	GoalFlexibility    = "flexibility"
	GoalStrength       = "strength"
	GoalGeneralFitness = "general_fitness"
)

// GoalTypes lists every goal type in display order.
var GoalTypes = []string{
	GoalWeightLoss,
	GoalMuscleGain,
	GoalEndurance,
	GoalFlexibility,
	GoalStrength,
	GoalGeneralFitness,
}

type Goal struct {
	ID           string    `json:"id" validate:"required"`
	UserID       string    `json:"userId" validate:"required"`
	Type         string    `json:"type" validate:"required,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	TargetValue  float64   `json:"targetValue" validate:"gt=0"`
	CurrentValue float64   `json:"currentValue" validate:"gte=0"`
	Unit         string    `json:"unit" validate:"required,max=20"`
	StartDate    time.Time `json:"startDate"`
	TargetDate   time.Time `json:"targetDate"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

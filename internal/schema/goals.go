package schema

import "time"

type GoalIDInput struct {
	GoalID string `json:"goalId" validate:"required,uuid"`
}

type CreateGoalInput struct {
	Type        string     `json:"type" validate:"required,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	TargetValue float64    `json:"targetValue" validate:"gt=0"`
	Unit        string     `json:"unit" validate:"required,max=20"`
	TargetDate  time.Time  `json:"targetDate" validate:"required"`
	StartDate   *time.Time `json:"startDate,omitempty"`
}

func (in CreateGoalInput) Refine() Violations {
	if in.StartDate != nil && !in.TargetDate.IsZero() && !in.TargetDate.After(*in.StartDate) {
		return Violations{{Field: "targetDate", Message: "must be after startDate"}}
	}
	return nil
}

type UpdateGoalProgressInput struct {
	GoalID       string   `json:"goalId" validate:"required,uuid"`
	CurrentValue *float64 `json:"currentValue" validate:"required,gte=0"`
}

type UpdateGoalInput struct {
	GoalID      string     `json:"goalId" validate:"required,uuid"`
	Type        *string    `json:"type,omitempty" validate:"omitempty,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	TargetValue *float64   `json:"targetValue,omitempty" validate:"omitempty,gt=0"`
	Unit        *string    `json:"unit,omitempty" validate:"omitempty,min=1,max=20"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}

func (in UpdateGoalInput) Refine() Violations {
	if in.StartDate != nil && in.TargetDate != nil && !in.TargetDate.After(*in.StartDate) {
		return Violations{{Field: "targetDate", Message: "must be after startDate"}}
	}
	return nil
}

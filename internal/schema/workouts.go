package schema

import (
	"fmt"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

type GeneratePlanInput struct {
	GoalID          string   `json:"goalId" validate:"required,uuid"`
	GoalType        *string  `json:"goalType,omitempty" validate:"omitempty,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	Name            string   `json:"name" validate:"required,max=100"`
	DurationWeeks   int      `json:"durationWeeks" validate:"min=1,max=52"`
	SessionsPerWeek int      `json:"sessionsPerWeek" validate:"min=1,max=7"`
	Difficulty      string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Equipment       []string `json:"equipment,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

type PlanIDInput struct {
	PlanID string `json:"planId" validate:"required,uuid"`
}

type UpdatePlanInput struct {
	PlanID          string                `json:"planId" validate:"required,uuid"`
	Name            *string               `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	DurationWeeks   *int                  `json:"durationWeeks,omitempty" validate:"omitempty,min=1,max=52"`
	SessionsPerWeek *int                  `json:"sessionsPerWeek,omitempty" validate:"omitempty,min=1,max=7"`
	Difficulty      *string               `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Exercises       []models.PlanExercise `json:"exercises,omitempty" validate:"omitempty,max=30,dive"`
}

func (in UpdatePlanInput) Refine() Violations {
	var violations Violations
	for i, ex := range in.Exercises {
		if ex.Reps == nil && ex.Duration == nil {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("exercises[%d]", i),
				Message: "must set reps or duration",
			})
		}
	}
	return violations
}

type SessionIDInput struct {
	SessionID string `json:"sessionId" validate:"required,uuid"`
}

type UpdateSessionInput struct {
	SessionID string                    `json:"sessionId" validate:"required,uuid"`
	Exercises []models.ExerciseProgress `json:"exercises" validate:"required,max=30,dive"`
}

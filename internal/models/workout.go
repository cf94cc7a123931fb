package models

import "time"

type PlanExercise struct {
	ExerciseID  string `json:"exerciseId" validate:"required"`
	Sets        int    `json:"sets" validate:"min=1,max=10"`
	Reps        *int   `json:"reps,omitempty" validate:"omitempty,min=1,max=100"`
	Duration    *int   `json:"duration,omitempty" validate:"omitempty,min=5,max=3600"`
	RestSeconds int    `json:"restSeconds" validate:"min=0,max=600"`
}

type WorkoutPlan struct {
	ID              string         `json:"id" validate:"required"`
	UserID          string         `json:"userId" validate:"required"`
	GoalID          string         `json:"goalId" validate:"required"`
	Name            string         `json:"name" validate:"required,max=100"`
	DurationWeeks   int            `json:"durationWeeks" validate:"min=1,max=52"`
	SessionsPerWeek int            `json:"sessionsPerWeek" validate:"min=1,max=7"`
	Difficulty      string         `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Exercises       []PlanExercise `json:"exercises" validate:"dive"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type SetRecord struct {
	SetNumber int      `json:"setNumber" validate:"min=1"`
	Reps      *int     `json:"reps,omitempty" validate:"omitempty,min=0,max=1000"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,min=0,max=1000"`
	Duration  *int     `json:"duration,omitempty" validate:"omitempty,min=0,max=86400"`
	Completed bool     `json:"completed"`
}

type ExerciseProgress struct {
	ExerciseID string      `json:"exerciseId" validate:"required"`
	Completed  bool        `json:"completed"`
	Sets       []SetRecord `json:"sets" validate:"dive"`
}

type WorkoutSession struct {
	ID          string             `json:"id" validate:"required"`
	UserID      string             `json:"userId" validate:"required"`
	PlanID      string             `json:"planId" validate:"required"`
	StartedAt   time.Time          `json:"startedAt"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
	Exercises   []ExerciseProgress `json:"exercises" validate:"dive"`
}

func (s *WorkoutSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// ClonePlanExercises returns a deep copy so callers never share optional fields.
func ClonePlanExercises(in []PlanExercise) []PlanExercise {
	if in == nil {
		return nil
	}
	out := make([]PlanExercise, len(in))
	for i, ex := range in {
		out[i] = ex
		if ex.Reps != nil {
			reps := *ex.Reps
			out[i].Reps = &reps
		}
		if ex.Duration != nil {
			duration := *ex.Duration
			out[i].Duration = &duration
		}
	}
	return out
}

func CloneProgress(in []ExerciseProgress) []ExerciseProgress {
	if in == nil {
		return nil
	}
	out := make([]ExerciseProgress, len(in))
	for i, ex := range in {
		out[i] = ExerciseProgress{ExerciseID: ex.ExerciseID, Completed: ex.Completed}
		if ex.Sets != nil {
			out[i].Sets = make([]SetRecord, len(ex.Sets))
			for j, set := range ex.Sets {
				out[i].Sets[j] = set
				if set.Reps != nil {
					v := *set.Reps
					out[i].Sets[j].Reps = &v
				}
				if set.Weight != nil {
					v := *set.Weight
					out[i].Sets[j].Weight = &v
				}
				if set.Duration != nil {
					v := *set.Duration
					out[i].Sets[j].Duration = &v
				}
			}
		}
	}
	return out
}

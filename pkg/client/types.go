package client

import (
	"errors"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

// The contract types are declared inside the server module; these aliases
// let callers outside it name them.

type (
	// Code classifies a failed call. Compare with the Code constants below.
	Code = rpc.Code
	// Error is returned for every call the server answered with a failure.
	Error      = rpc.Error
	Violation  = schema.Violation
	Violations = schema.Violations
)

const (
	CodeBadRequest   = rpc.CodeBadRequest
	CodeUnauthorized = rpc.CodeUnauthorized
	CodeNotFound     = rpc.CodeNotFound
	CodeConflict     = rpc.CodeConflict
	CodeInternal     = rpc.CodeInternal
)

// Procedure inputs.
type (
	CreateUserProfileInput    = schema.CreateUserProfileInput
	UpdateUserProfileInput    = schema.UpdateUserProfileInput
	SignUpInput               = schema.SignUpInput
	CreateGoalInput           = schema.CreateGoalInput
	UpdateGoalInput           = schema.UpdateGoalInput
	SubmitOnboardingInput     = schema.SubmitOnboardingInput
	GeneratePlanInput         = schema.GeneratePlanInput
	UpdatePlanInput           = schema.UpdatePlanInput
	UpdateSessionInput        = schema.UpdateSessionInput
	SearchExercisesInput      = schema.SearchExercisesInput
	FeaturedExercisesInput    = schema.FeaturedExercisesInput
	RecommendedExercisesInput = schema.RecommendedExercisesInput
)

// Entities and results.
type (
	Identity         = models.Identity
	UserProfile      = models.UserProfile
	Biometrics       = models.Biometrics
	SignUpResult     = models.SignUpResult
	Goal             = models.Goal
	OnboardingRecord = models.OnboardingRecord
	OnboardingStatus = models.OnboardingStatus
	OnboardingResult = models.OnboardingResult
	WorkoutPlan      = models.WorkoutPlan
	PlanExercise     = models.PlanExercise
	WorkoutSession   = models.WorkoutSession
	ExerciseProgress = models.ExerciseProgress
	SetRecord        = models.SetRecord
	Exercise         = models.Exercise
)

// ErrorCode returns the code of a failed call, or "" when err did not come
// from the server.
func ErrorCode(err error) Code {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr.Code
	}
	return ""
}

func IsCode(err error, code Code) bool {
	return ErrorCode(err) == code
}

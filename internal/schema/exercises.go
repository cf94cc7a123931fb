package schema

const (
	DefaultSearchLimit      = 20
	DefaultFeaturedLimit    = 6
	DefaultRecommendedLimit = 6
)

type SearchExercisesInput struct {
	Query      *string `json:"query,omitempty" validate:"omitempty,max=100"`
	Category   *string `json:"category,omitempty" validate:"omitempty,oneof=strength cardio flexibility core"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Equipment  *string `json:"equipment,omitempty" validate:"omitempty,max=50"`
	Limit      *int    `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

func (in SearchExercisesInput) LimitOrDefault() int {
	if in.Limit == nil {
		return DefaultSearchLimit
	}
	return *in.Limit
}

type ExerciseIDInput struct {
	ExerciseID string `json:"exerciseId" validate:"required,max=64"`
}

type FeaturedExercisesInput struct {
	Limit *int `json:"limit,omitempty" validate:"omitempty,min=1,max=12"`
}

func (in FeaturedExercisesInput) LimitOrDefault() int {
	if in.Limit == nil {
		return DefaultFeaturedLimit
	}
	return *in.Limit
}

type RecommendedExercisesInput struct {
	GoalType   string `json:"goalType" validate:"required,oneof=weight_loss muscle_gain endurance flexibility strength general_fitness"`
	Difficulty string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Limit      *int   `json:"limit,omitempty" validate:"omitempty,min=1,max=12"`
}

func (in RecommendedExercisesInput) LimitOrDefault() int {
	if in.Limit == nil {
		return DefaultRecommendedLimit
	}
	return *in.Limit
}

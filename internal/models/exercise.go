package models

const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryFlexibility = "flexibility"
	CategoryCore        = "core"
)

type Exercise struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Category     string   `json:"category" validate:"oneof=strength cardio flexibility core"`
	Difficulty   string   `json:"difficulty" validate:"oneof=beginner intermediate advanced"`
	Equipment    []string `json:"equipment"`
	Instructions []string `json:"instructions"`
	MuscleGroups []string `json:"muscleGroups"`
	VideoURL     *string  `json:"videoUrl,omitempty"`
}

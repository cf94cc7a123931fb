package handlers

import (
	"context"

	"github.com/c00p75/fitness-league-sub000/internal/catalog"
	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

type exerciseCatalog interface {
	Get(id string) (models.Exercise, bool)
	Search(f catalog.Filter) []models.Exercise
	Categories() []string
	Equipment() []string
	MuscleGroups() []string
	Featured(limit int) []models.Exercise
	Recommend(goalType, difficulty string, equipment []string, limit int) []models.Exercise
}

// ExercisesHandler serves the static exercise library. Every procedure is public.
type ExercisesHandler struct {
	catalog exerciseCatalog
}

func NewExercisesHandler(catalog exerciseCatalog) *ExercisesHandler {
	return &ExercisesHandler{catalog: catalog}
}

func (h *ExercisesHandler) Procedures() rpc.Namespace {
	return rpc.Namespace{
		"searchExercises":         rpc.PublicQuery(h.searchExercises),
		"getExercise":             rpc.PublicQuery(h.getExercise),
		"getCategories":           rpc.PublicQuery(h.getCategories),
		"getEquipment":            rpc.PublicQuery(h.getEquipment),
		"getMuscleGroups":         rpc.PublicQuery(h.getMuscleGroups),
		"getFeaturedExercises":    rpc.PublicQuery(h.getFeaturedExercises),
		"getRecommendedExercises": rpc.PublicQuery(h.getRecommendedExercises),
	}
}

func (h *ExercisesHandler) searchExercises(_ context.Context, _ *rpc.Context, in schema.SearchExercisesInput) ([]models.Exercise, error) {
	return h.catalog.Search(catalog.Filter{
		Query:      deref(in.Query),
		Category:   deref(in.Category),
		Difficulty: deref(in.Difficulty),
		Equipment:  deref(in.Equipment),
		Limit:      in.LimitOrDefault(),
	}), nil
}

func (h *ExercisesHandler) getExercise(_ context.Context, _ *rpc.Context, in schema.ExerciseIDInput) (*models.Exercise, error) {
	exercise, ok := h.catalog.Get(in.ExerciseID)
	if !ok {
		return nil, rpc.NewError(rpc.CodeNotFound, "exercise not found")
	}
	return &exercise, nil
}

func (h *ExercisesHandler) getCategories(context.Context, *rpc.Context, schema.Empty) ([]string, error) {
	return h.catalog.Categories(), nil
}

func (h *ExercisesHandler) getEquipment(context.Context, *rpc.Context, schema.Empty) ([]string, error) {
	return h.catalog.Equipment(), nil
}

func (h *ExercisesHandler) getMuscleGroups(context.Context, *rpc.Context, schema.Empty) ([]string, error) {
	return h.catalog.MuscleGroups(), nil
}

func (h *ExercisesHandler) getFeaturedExercises(_ context.Context, _ *rpc.Context, in schema.FeaturedExercisesInput) ([]models.Exercise, error) {
	return h.catalog.Featured(in.LimitOrDefault()), nil
}

func (h *ExercisesHandler) getRecommendedExercises(_ context.Context, _ *rpc.Context, in schema.RecommendedExercisesInput) ([]models.Exercise, error) {
	return h.catalog.Recommend(in.GoalType, in.Difficulty, nil, in.LimitOrDefault()), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Package catalog serves the static exercise library.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

// Filter narrows Search. Empty fields match everything.
type Filter struct {
	Query      string
	Category   string
	Difficulty string
	Equipment  string
	Limit      int
}

type Catalog struct {
	exercises []models.Exercise
	byID      map[string]int
	featured  []string
}

func New() *Catalog {
	return newCatalog(defaultExercises, featuredIDs)
}

func newCatalog(exercises []models.Exercise, featured []string) *Catalog {
	c := &Catalog{
		exercises: exercises,
		byID:      make(map[string]int, len(exercises)),
		featured:  featured,
	}
	for i, ex := range exercises {
		c.byID[ex.ID] = i
	}
	return c
}

// All returns every exercise in catalog order.
func (c *Catalog) All() []models.Exercise {
	return cloneAll(c.exercises)
}

func (c *Catalog) Get(id string) (models.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, false
	}
	return clone(c.exercises[i]), true
}

func (c *Catalog) Search(f Filter) []models.Exercise {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	equipment := strings.ToLower(strings.TrimSpace(f.Equipment))

	out := make([]models.Exercise, 0)
	for _, ex := range c.exercises {
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		if f.Category != "" && ex.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && ex.Difficulty != f.Difficulty {
			continue
		}
		if equipment != "" && !containsFold(ex.Equipment, equipment) {
			continue
		}
		if query != "" && !matchesQuery(ex, query) {
			continue
		}
		out = append(out, clone(ex))
	}
	return out
}

func (c *Catalog) Categories() []string {
	return c.distinct(func(ex models.Exercise) []string { return []string{ex.Category} })
}

func (c *Catalog) Equipment() []string {
	return c.distinct(func(ex models.Exercise) []string { return ex.Equipment })
}

func (c *Catalog) MuscleGroups() []string {
	return c.distinct(func(ex models.Exercise) []string { return ex.MuscleGroups })
}

func (c *Catalog) Featured(limit int) []models.Exercise {
	out := make([]models.Exercise, 0, limit)
	for _, id := range c.featured {
		if len(out) >= limit {
			break
		}
		if ex, ok := c.Get(id); ok {
			out = append(out, ex)
		}
	}
	return out
}

var goalCategories = map[string][]string{
	models.GoalWeightLoss:     {models.CategoryCardio, models.CategoryCore, models.CategoryStrength},
	models.GoalMuscleGain:     {models.CategoryStrength},
	models.GoalEndurance:      {models.CategoryCardio, models.CategoryCore},
	models.GoalFlexibility:    {models.CategoryFlexibility, models.CategoryCore},
	models.GoalStrength:       {models.CategoryStrength, models.CategoryCore},
	models.GoalGeneralFitness: {models.CategoryStrength, models.CategoryCardio, models.CategoryCore, models.CategoryFlexibility},
}

var difficultyRank = map[string]int{
	models.ExperienceBeginner:     0,
	models.ExperienceIntermediate: 1,
	models.ExperienceAdvanced:     2,
}

// Recommend returns exercises suited to goalType at or below difficulty.
// When equipment is non-empty only exercises needing nothing beyond it (or
// no equipment at all) are kept. An empty goalType matches every category.
func (c *Catalog) Recommend(goalType, difficulty string, equipment []string, limit int) []models.Exercise {
	categories, ok := goalCategories[goalType]
	if !ok {
		categories = goalCategories[models.GoalGeneralFitness]
	}
	maxRank, ok := difficultyRank[difficulty]
	if !ok {
		maxRank = difficultyRank[models.ExperienceAdvanced]
	}
	available := make(map[string]bool, len(equipment)+1)
	for _, item := range equipment {
		available[strings.ToLower(strings.TrimSpace(item))] = true
	}

	out := make([]models.Exercise, 0)
	for _, ex := range c.exercises {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !slices.Contains(categories, ex.Category) || difficultyRank[ex.Difficulty] > maxRank {
			continue
		}
		if len(available) > 0 && !usable(ex, available) {
			continue
		}
		out = append(out, clone(ex))
	}
	return out
}

func usable(ex models.Exercise, available map[string]bool) bool {
	if slices.Contains(ex.Equipment, "none") {
		return true
	}
	for _, item := range ex.Equipment {
		if !available[strings.ToLower(item)] {
			return false
		}
	}
	return true
}

func (c *Catalog) distinct(values func(models.Exercise) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, ex := range c.exercises {
		for _, v := range values(ex) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func matchesQuery(ex models.Exercise, query string) bool {
	if strings.Contains(strings.ToLower(ex.Name), query) {
		return true
	}
	for _, group := range ex.MuscleGroups {
		if strings.Contains(strings.ToLower(group), query) {
			return true
		}
	}
	return false
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func clone(ex models.Exercise) models.Exercise {
	ex.Equipment = slices.Clone(ex.Equipment)
	ex.Instructions = slices.Clone(ex.Instructions)
	ex.MuscleGroups = slices.Clone(ex.MuscleGroups)
	if ex.VideoURL != nil {
		url := *ex.VideoURL
		ex.VideoURL = &url
	}
	return ex
}

func cloneAll(in []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, len(in))
	for i, ex := range in {
		out[i] = clone(ex)
	}
	return out
}

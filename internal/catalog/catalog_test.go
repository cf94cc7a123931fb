package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

func TestCatalogEntriesAreValid(t *testing.T) {
	c := New()
	all := c.All()
	require.Len(t, all, 12)
	assert.NoError(t, schema.ValidateOutput(all))

	ids := make(map[string]bool)
	for _, ex := range all {
		assert.False(t, ids[ex.ID], "duplicate id %s", ex.ID)
		ids[ex.ID] = true
	}
	for _, id := range featuredIDs {
		assert.True(t, ids[id], "featured id %s missing from catalog", id)
	}
}

func TestSearchFilters(t *testing.T) {
	c := New()

	cardio := c.Search(Filter{Category: models.CategoryCardio})
	require.NotEmpty(t, cardio)
	for _, ex := range cardio {
		assert.Equal(t, models.CategoryCardio, ex.Category)
	}

	byMuscle := c.Search(Filter{Query: "GLUTES"})
	assert.ElementsMatch(t, []string{"bodyweight-squat", "barbell-deadlift"}, idsOf(byMuscle))

	withMat := c.Search(Filter{Equipment: "mat", Difficulty: models.ExperienceBeginner})
	assert.ElementsMatch(t, []string{"plank", "downward-dog", "hip-flexor-stretch"}, idsOf(withMat))

	assert.Len(t, c.Search(Filter{Limit: 3}), 3)
	assert.Empty(t, c.Search(Filter{Query: "underwater basket weaving"}))
}

func TestGetReturnsCopies(t *testing.T) {
	c := New()
	ex, ok := c.Get("push-up")
	require.True(t, ok)
	ex.MuscleGroups[0] = "changed"

	again, _ := c.Get("push-up")
	assert.Equal(t, "chest", again.MuscleGroups[0])

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestDistinctListsAreSorted(t *testing.T) {
	c := New()
	assert.Equal(t, []string{"cardio", "core", "flexibility", "strength"}, c.Categories())
	assert.IsIncreasing(t, c.Equipment())
	assert.Contains(t, c.MuscleGroups(), "hamstrings")
}

func TestFeaturedRespectsLimit(t *testing.T) {
	c := New()
	assert.Equal(t, []string{"push-up", "plank"}, idsOf(c.Featured(2)))
	assert.Len(t, c.Featured(12), len(featuredIDs))
}

func TestRecommendFiltersByGoalDifficultyAndEquipment(t *testing.T) {
	c := New()

	beginnerStrength := c.Recommend(models.GoalMuscleGain, models.ExperienceBeginner, nil, 10)
	assert.Equal(t, []string{"push-up", "bodyweight-squat"}, idsOf(beginnerStrength))

	advanced := c.Recommend(models.GoalMuscleGain, models.ExperienceAdvanced, nil, 10)
	assert.Equal(t, []string{"push-up", "bodyweight-squat", "dumbbell-row", "barbell-deadlift"}, idsOf(advanced))

	noBench := c.Recommend(models.GoalMuscleGain, models.ExperienceAdvanced, []string{"dumbbells", "barbell"}, 10)
	assert.Equal(t, []string{"push-up", "bodyweight-squat", "barbell-deadlift"}, idsOf(noBench))

	flexibility := c.Recommend(models.GoalFlexibility, models.ExperienceBeginner, []string{"mat"}, 2)
	assert.Equal(t, []string{"plank", "downward-dog"}, idsOf(flexibility))
}

func idsOf(exercises []models.Exercise) []string {
	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
	}
	return ids
}

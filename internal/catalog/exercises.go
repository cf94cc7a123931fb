package catalog

import "github.com/c00p75/fitness-league-sub000/internal/models"

func video(url string) *string { return &url }

var defaultExercises = []models.Exercise{
	{
		ID:           "push-up",
		Name:         "Push-Up",
		Category:     models.CategoryStrength,
		Difficulty:   models.ExperienceBeginner,
		Equipment:    []string{"none"},
		Instructions: []string{"Start in a high plank with hands under shoulders.", "Lower your chest until it nearly touches the floor.", "Press back up to full arm extension."},
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
		VideoURL:     video("https://videos.fitnessleague.app/push-up.mp4"),
	},
	{
		ID:           "bodyweight-squat",
		Name:         "Bodyweight Squat",
		Category:     models.CategoryStrength,
		Difficulty:   models.ExperienceBeginner,
		Equipment:    []string{"none"},
		Instructions: []string{"Stand with feet shoulder-width apart.", "Sit your hips back and down until thighs are parallel to the floor.", "Drive through your heels to stand."},
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
	},
	{
		ID:           "dumbbell-row",
		Name:         "Dumbbell Row",
		Category:     models.CategoryStrength,
		Difficulty:   models.ExperienceIntermediate,
		Equipment:    []string{"dumbbells", "bench"},
		Instructions: []string{"Support one knee and hand on a bench.", "Pull the dumbbell toward your hip.", "Lower under control."},
		MuscleGroups: []string{"back", "biceps"},
	},
	{
		ID:           "barbell-deadlift",
		Name:         "Barbell Deadlift",
		Category:     models.CategoryStrength,
		Difficulty:   models.ExperienceAdvanced,
		Equipment:    []string{"barbell"},
		Instructions: []string{"Stand with the bar over mid-foot.", "Hinge and grip the bar with a flat back.", "Stand up by driving the floor away, then lower with control."},
		MuscleGroups: []string{"hamstrings", "glutes", "back"},
		VideoURL:     video("https://videos.fitnessleague.app/deadlift.mp4"),
	},
	{
		ID:           "jumping-jacks",
		Name:         "Jumping Jacks",
		Category:     models.CategoryCardio,
		Difficulty:   models.ExperienceBeginner,
		Equipment:    []string{"none"},
		Instructions: []string{"Jump while spreading legs and raising arms overhead.", "Jump back to the starting position.", "Keep a steady rhythm."},
		MuscleGroups: []string{"full body"},
	},
	{
		ID:           "mountain-climbers",
		Name:         "Mountain Climbers",
		Category:     models.CategoryCardio,
		Difficulty:   models.ExperienceIntermediate,
		Equipment:    []string{"none"},
		Instructions: []string{"Start in a high plank.", "Drive one knee toward your chest, then switch legs quickly.", "Keep hips level throughout."},
		MuscleGroups: []string{"core", "shoulders", "hip flexors"},
	},
	{
		ID:           "burpee",
		Name:         "Burpee",
		Category:     models.CategoryCardio,
		Difficulty:   models.ExperienceAdvanced,
		Equipment:    []string{"none"},
		Instructions: []string{"Squat and place hands on the floor.", "Jump feet back into a plank and perform a push-up.", "Jump feet forward and explode upward."},
		MuscleGroups: []string{"full body"},
		VideoURL:     video("https://videos.fitnessleague.app/burpee.mp4"),
	},
	{
		ID:           "jump-rope",
		Name:         "Jump Rope",
		Category:     models.CategoryCardio,
		Difficulty:   models.ExperienceIntermediate,
		Equipment:    []string{"jump rope"},
		Instructions: []string{"Hold the handles at hip height.", "Turn the rope with your wrists and hop on the balls of your feet.", "Land softly and keep elbows close."},
		MuscleGroups: []string{"calves", "shoulders"},
	},
	{
		ID:           "plank",
		Name:         "Plank",
		Category:     models.CategoryCore,
		Difficulty:   models.ExperienceBeginner,
		Equipment:    []string{"none", "mat"},
		Instructions: []string{"Rest on forearms and toes.", "Keep a straight line from head to heels.", "Brace your core and breathe steadily."},
		MuscleGroups: []string{"core", "shoulders"},
	},
	{
		ID:           "russian-twist",
		Name:         "Russian Twist",
		Category:     models.CategoryCore,
		Difficulty:   models.ExperienceIntermediate,
		Equipment:    []string{"none", "mat"},
		Instructions: []string{"Sit with knees bent and lean back slightly.", "Rotate your torso side to side.", "Keep your chest lifted."},
		MuscleGroups: []string{"obliques", "core"},
	},
	{
		ID:           "downward-dog",
		Name:         "Downward Dog",
		Category:     models.CategoryFlexibility,
		Difficulty:   models.ExperienceBeginner,
		Equipment:    []string{"mat"},
		Instructions: []string{"Start on hands and knees.", "Lift hips up and back into an inverted V.", "Press heels toward the floor and hold."},
		MuscleGroups: []string{"hamstrings", "calves", "shoulders"},
	},
	{
		ID:           "hip-flexor-stretch",
		Name:         "Hip Flexor Stretch",
		Category:     models.CategoryFlexibility,
		Difficulty:   models.ExperienceBeginner,
		Equipment:    []string{"mat"},
		Instructions: []string{"Kneel on one knee with the other foot forward.", "Shift hips forward until you feel a stretch.", "Hold, then switch sides."},
		MuscleGroups: []string{"hip flexors", "quadriceps"},
	},
}

var featuredIDs = []string{"push-up", "plank", "jumping-jacks", "bodyweight-squat", "downward-dog", "burpee", "dumbbell-row", "mountain-climbers"}

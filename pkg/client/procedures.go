package client

import (
	"context"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

func (c *Client) Auth() AuthAPI             { return AuthAPI{c: c} }
func (c *Client) Goals() GoalsAPI           { return GoalsAPI{c: c} }
func (c *Client) Onboarding() OnboardingAPI { return OnboardingAPI{c: c} }
func (c *Client) Workouts() WorkoutsAPI     { return WorkoutsAPI{c: c} }
func (c *Client) Exercises() ExercisesAPI   { return ExercisesAPI{c: c} }

func query[Out any](ctx context.Context, c *Client, path string, in any) (*Out, error) {
	out, err := Query[Out](ctx, c, path, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func mutate[Out any](ctx context.Context, c *Client, path string, in any) (*Out, error) {
	out, err := Mutate[Out](ctx, c, path, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type AuthAPI struct{ c *Client }

func (a AuthAPI) CurrentUser(ctx context.Context) (*Identity, error) {
	return query[Identity](ctx, a.c, "auth.getCurrentUser", nil)
}

func (a AuthAPI) CreateProfile(ctx context.Context, in CreateUserProfileInput) (*UserProfile, error) {
	return mutate[UserProfile](ctx, a.c, "auth.createUserProfile", in)
}

func (a AuthAPI) Profile(ctx context.Context) (*UserProfile, error) {
	return query[UserProfile](ctx, a.c, "auth.getUserProfile", nil)
}

func (a AuthAPI) UpdateProfile(ctx context.Context, in UpdateUserProfileInput) (*UserProfile, error) {
	return mutate[UserProfile](ctx, a.c, "auth.updateUserProfile", in)
}

func (a AuthAPI) DeleteAccount(ctx context.Context) error {
	_, err := Mutate[models.SuccessResult](ctx, a.c, "auth.deleteAccount", nil)
	return err
}

func (a AuthAPI) SignUp(ctx context.Context, in SignUpInput) (*SignUpResult, error) {
	return mutate[SignUpResult](ctx, a.c, "auth.signUp", in)
}

type GoalsAPI struct{ c *Client }

func (g GoalsAPI) List(ctx context.Context) ([]Goal, error) {
	return Query[[]Goal](ctx, g.c, "goals.getGoals", nil)
}

func (g GoalsAPI) Get(ctx context.Context, goalID string) (*Goal, error) {
	return query[Goal](ctx, g.c, "goals.getGoal", schema.GoalIDInput{GoalID: goalID})
}

func (g GoalsAPI) Create(ctx context.Context, in CreateGoalInput) (*Goal, error) {
	return mutate[Goal](ctx, g.c, "goals.createGoal", in)
}

func (g GoalsAPI) UpdateProgress(ctx context.Context, goalID string, currentValue float64) (*Goal, error) {
	return mutate[Goal](ctx, g.c, "goals.updateGoalProgress", schema.UpdateGoalProgressInput{
		GoalID:       goalID,
		CurrentValue: &currentValue,
	})
}

func (g GoalsAPI) Update(ctx context.Context, in UpdateGoalInput) (*Goal, error) {
	return mutate[Goal](ctx, g.c, "goals.updateGoal", in)
}

func (g GoalsAPI) Delete(ctx context.Context, goalID string) error {
	_, err := Mutate[models.SuccessResult](ctx, g.c, "goals.deleteGoal", schema.GoalIDInput{GoalID: goalID})
	return err
}

type OnboardingAPI struct{ c *Client }

func (o OnboardingAPI) Submit(ctx context.Context, in SubmitOnboardingInput) (*OnboardingResult, error) {
	return mutate[OnboardingResult](ctx, o.c, "onboarding.submitOnboarding", in)
}

func (o OnboardingAPI) Status(ctx context.Context) (*OnboardingStatus, error) {
	return query[OnboardingStatus](ctx, o.c, "onboarding.getOnboardingStatus", nil)
}

func (o OnboardingAPI) Reset(ctx context.Context) error {
	_, err := Mutate[models.SuccessResult](ctx, o.c, "onboarding.resetOnboarding", nil)
	return err
}

type WorkoutsAPI struct{ c *Client }

func (w WorkoutsAPI) GeneratePlan(ctx context.Context, in GeneratePlanInput) (*WorkoutPlan, error) {
	return mutate[WorkoutPlan](ctx, w.c, "workouts.generatePlan", in)
}

func (w WorkoutsAPI) Plans(ctx context.Context) ([]WorkoutPlan, error) {
	return Query[[]WorkoutPlan](ctx, w.c, "workouts.getPlans", nil)
}

func (w WorkoutsAPI) Plan(ctx context.Context, planID string) (*WorkoutPlan, error) {
	return query[WorkoutPlan](ctx, w.c, "workouts.getPlan", schema.PlanIDInput{PlanID: planID})
}

func (w WorkoutsAPI) UpdatePlan(ctx context.Context, in UpdatePlanInput) (*WorkoutPlan, error) {
	return mutate[WorkoutPlan](ctx, w.c, "workouts.updatePlan", in)
}

func (w WorkoutsAPI) DeletePlan(ctx context.Context, planID string) error {
	_, err := Mutate[models.SuccessResult](ctx, w.c, "workouts.deletePlan", schema.PlanIDInput{PlanID: planID})
	return err
}

func (w WorkoutsAPI) StartSession(ctx context.Context, planID string) (*WorkoutSession, error) {
	return mutate[WorkoutSession](ctx, w.c, "workouts.startSession", schema.PlanIDInput{PlanID: planID})
}

func (w WorkoutsAPI) UpdateSession(ctx context.Context, in UpdateSessionInput) (*WorkoutSession, error) {
	return mutate[WorkoutSession](ctx, w.c, "workouts.updateSession", in)
}

func (w WorkoutsAPI) CompleteSession(ctx context.Context, sessionID string) (*WorkoutSession, error) {
	return mutate[WorkoutSession](ctx, w.c, "workouts.completeSession", schema.SessionIDInput{SessionID: sessionID})
}

func (w WorkoutsAPI) Sessions(ctx context.Context) ([]WorkoutSession, error) {
	return Query[[]WorkoutSession](ctx, w.c, "workouts.getSessions", nil)
}

func (w WorkoutsAPI) Session(ctx context.Context, sessionID string) (*WorkoutSession, error) {
	return query[WorkoutSession](ctx, w.c, "workouts.getSession", schema.SessionIDInput{SessionID: sessionID})
}

type ExercisesAPI struct{ c *Client }

func (e ExercisesAPI) Search(ctx context.Context, in SearchExercisesInput) ([]Exercise, error) {
	return Query[[]Exercise](ctx, e.c, "exercises.searchExercises", in)
}

func (e ExercisesAPI) Get(ctx context.Context, exerciseID string) (*Exercise, error) {
	return query[Exercise](ctx, e.c, "exercises.getExercise", schema.ExerciseIDInput{ExerciseID: exerciseID})
}

func (e ExercisesAPI) Categories(ctx context.Context) ([]string, error) {
	return Query[[]string](ctx, e.c, "exercises.getCategories", nil)
}

func (e ExercisesAPI) Equipment(ctx context.Context) ([]string, error) {
	return Query[[]string](ctx, e.c, "exercises.getEquipment", nil)
}

func (e ExercisesAPI) MuscleGroups(ctx context.Context) ([]string, error) {
	return Query[[]string](ctx, e.c, "exercises.getMuscleGroups", nil)
}

func (e ExercisesAPI) Featured(ctx context.Context, in FeaturedExercisesInput) ([]Exercise, error) {
	return Query[[]Exercise](ctx, e.c, "exercises.getFeaturedExercises", in)
}

func (e ExercisesAPI) Recommended(ctx context.Context, in RecommendedExercisesInput) ([]Exercise, error) {
	return Query[[]Exercise](ctx, e.c, "exercises.getRecommendedExercises", in)
}

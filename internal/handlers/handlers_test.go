package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c00p75/fitness-league-sub000/internal/catalog"
	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

const testGoalID = "6f1c2a7e-8d44-4a55-9a0e-2b6c3f9d1e01"

func authed(uid string) *rpc.Context {
	return &rpc.Context{Identity: &models.Identity{UID: uid, Email: uid + "@example.com"}}
}

func invoke(t *testing.T, ns rpc.Namespace, name string, rc *rpc.Context, input string) (any, error) {
	t.Helper()
	proc, ok := ns[name]
	require.True(t, ok, "procedure %s not registered", name)
	return proc.Invoke(context.Background(), rc, json.RawMessage(input))
}

type stubGoalService struct {
	goal         *models.Goal
	err          error
	lastUserID   string
	lastGoalID   string
	lastProgress float64
	lastUpdate   repository.UpdateGoalInput
	lastCreate   services.CreateGoalInput
}

func (s *stubGoalService) ListGoals(_ context.Context, userID string) ([]models.Goal, error) {
	s.lastUserID = userID
	if s.goal == nil {
		return []models.Goal{}, s.err
	}
	return []models.Goal{*s.goal}, s.err
}

func (s *stubGoalService) GetGoal(_ context.Context, userID, goalID string) (*models.Goal, error) {
	s.lastUserID, s.lastGoalID = userID, goalID
	return s.goal, s.err
}

func (s *stubGoalService) CreateGoal(_ context.Context, userID string, in services.CreateGoalInput) (*models.Goal, error) {
	s.lastUserID, s.lastCreate = userID, in
	return s.goal, s.err
}

func (s *stubGoalService) UpdateProgress(_ context.Context, userID, goalID string, currentValue float64) (*models.Goal, error) {
	s.lastUserID, s.lastGoalID, s.lastProgress = userID, goalID, currentValue
	return s.goal, s.err
}

func (s *stubGoalService) UpdateGoal(_ context.Context, userID, goalID string, req repository.UpdateGoalInput) (*models.Goal, error) {
	s.lastUserID, s.lastGoalID, s.lastUpdate = userID, goalID, req
	return s.goal, s.err
}

func (s *stubGoalService) DeleteGoal(_ context.Context, userID, goalID string) error {
	s.lastUserID, s.lastGoalID = userID, goalID
	return s.err
}

func sampleGoal() *models.Goal {
	return &models.Goal{ID: testGoalID, UserID: "user-1", Type: models.GoalWeightLoss, TargetValue: 10, Unit: "kg", IsActive: true}
}

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code rpc.Code
	}{
		{name: "not found", err: services.ErrNotFound, code: rpc.CodeNotFound},
		{name: "conflict", err: services.ErrConflict, code: rpc.CodeConflict},
		{name: "invalid", err: services.ErrInvalidInput, code: rpc.CodeBadRequest},
		{name: "storage", err: services.ErrStorageUnavailable, code: rpc.CodeInternal},
		{name: "unknown", err: errors.New("connection reset"), code: rpc.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, rpc.IsCode(mapServiceError(tc.err), tc.code))
		})
	}
	assert.NoError(t, mapServiceError(nil))
}

func TestGoalsProceduresPassCallerIdentity(t *testing.T) {
	svc := &stubGoalService{goal: sampleGoal()}
	ns := NewGoalsHandler(svc).Procedures()

	out, err := invoke(t, ns, "updateGoalProgress", authed("user-1"), `{"goalId":"`+testGoalID+`","currentValue":10}`)
	require.NoError(t, err)
	assert.Equal(t, "user-1", svc.lastUserID)
	assert.Equal(t, testGoalID, svc.lastGoalID)
	assert.Equal(t, 10.0, svc.lastProgress)
	assert.Equal(t, testGoalID, out.(*models.Goal).ID)

	_, err = invoke(t, ns, "updateGoal", authed("user-1"), `{"goalId":"`+testGoalID+`","isActive":false}`)
	require.NoError(t, err)
	require.NotNil(t, svc.lastUpdate.IsActive)
	assert.False(t, *svc.lastUpdate.IsActive)
	assert.Nil(t, svc.lastUpdate.TargetValue)
}

func TestGoalsProceduresMapErrors(t *testing.T) {
	svc := &stubGoalService{err: errors.Join(services.ErrNotFound)}
	ns := NewGoalsHandler(svc).Procedures()

	_, err := invoke(t, ns, "getGoal", authed("user-1"), `{"goalId":"`+testGoalID+`"}`)
	assert.True(t, rpc.IsCode(err, rpc.CodeNotFound))

	_, err = invoke(t, ns, "deleteGoal", nil, `{"goalId":"`+testGoalID+`"}`)
	assert.True(t, rpc.IsCode(err, rpc.CodeUnauthorized))
	assert.Empty(t, svc.lastUserID)
}

func TestGoalsRejectInvalidInputBeforeService(t *testing.T) {
	svc := &stubGoalService{goal: sampleGoal()}
	ns := NewGoalsHandler(svc).Procedures()

	_, err := invoke(t, ns, "updateGoalProgress", authed("user-1"), `{"goalId":"not-a-uuid","currentValue":-1}`)
	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, rpc.CodeBadRequest, rpcErr.Code)
	assert.ElementsMatch(t, []string{"goalId", "currentValue"}, rpcErr.Violations.Fields())
	assert.Empty(t, svc.lastUserID)
}

func TestExercisesProceduresArePublic(t *testing.T) {
	ns := NewExercisesHandler(catalog.New()).Procedures()
	for name, proc := range ns {
		assert.Equal(t, rpc.TierPublic, proc.Tier(), name)
		assert.Equal(t, rpc.KindQuery, proc.Kind(), name)
	}

	out, err := invoke(t, ns, "searchExercises", nil, `{"category":"cardio","limit":2}`)
	require.NoError(t, err)
	found := out.([]models.Exercise)
	assert.LessOrEqual(t, len(found), 2)
	for _, ex := range found {
		assert.Equal(t, models.CategoryCardio, ex.Category)
	}

	out, err = invoke(t, ns, "getFeaturedExercises", nil, ``)
	require.NoError(t, err)
	assert.Len(t, out.([]models.Exercise), 6)

	_, err = invoke(t, ns, "getExercise", nil, `{"exerciseId":"no-such-move"}`)
	assert.True(t, rpc.IsCode(err, rpc.CodeNotFound))

	_, err = invoke(t, ns, "searchExercises", nil, `{"limit":51}`)
	assert.True(t, rpc.IsCode(err, rpc.CodeBadRequest))
}

func TestAuthNamespaceTiers(t *testing.T) {
	ns := NewAuthHandler(nil).Procedures()

	assert.Equal(t, rpc.TierPublic, ns["signUp"].Tier())
	assert.Equal(t, rpc.KindMutation, ns["signUp"].Kind())
	for _, name := range []string{"getCurrentUser", "createUserProfile", "getUserProfile", "updateUserProfile", "deleteAccount"} {
		assert.Equal(t, rpc.TierProtected, ns[name].Tier(), name)
	}

	out, err := invoke(t, ns, "getCurrentUser", authed("user-1"), ``)
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.(models.Identity).UID)
}

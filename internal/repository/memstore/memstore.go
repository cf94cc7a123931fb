// Package memstore is an in-process implementation of the repository
// contracts, used for local development and tests. Reads return copies so
// callers never alias stored state.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

type record[T any] struct {
	value T
	seq   uint64
}

type Store struct {
	mu         sync.RWMutex
	seq        uint64
	now        func() time.Time
	profiles   map[string]record[models.UserProfile]
	onboarding map[string]record[models.OnboardingRecord]
	goals      map[string]record[models.Goal]
	plans      map[string]record[models.WorkoutPlan]
	sessions   map[string]record[models.WorkoutSession]
}

func New() *Store {
	return &Store{
		now:        func() time.Time { return time.Now().UTC() },
		profiles:   make(map[string]record[models.UserProfile]),
		onboarding: make(map[string]record[models.OnboardingRecord]),
		goals:      make(map[string]record[models.Goal]),
		plans:      make(map[string]record[models.WorkoutPlan]),
		sessions:   make(map[string]record[models.WorkoutSession]),
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Profiles() *ProfileStore       { return &ProfileStore{s} }
func (s *Store) Onboarding() *OnboardingStore { return &OnboardingStore{s} }
func (s *Store) Goals() *GoalStore             { return &GoalStore{s} }
func (s *Store) Plans() *PlanStore             { return &PlanStore{s} }
func (s *Store) Sessions() *SessionStore       { return &SessionStore{s} }
func (s *Store) Accounts() *AccountStore       { return &AccountStore{s} }

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// newestFirst returns the values owned by userID ordered like the SQL
// repositories: creation time descending.
func newestFirst[T any](items map[string]record[T], owner func(T) string, created func(T) time.Time, userID string) []record[T] {
	out := make([]record[T], 0)
	for _, item := range items {
		if owner(item.value) == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := created(out[i].value), created(out[j].value)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return out[i].seq > out[j].seq
	})
	return out
}

type ProfileStore struct{ s *Store }

func cloneProfile(p models.UserProfile) models.UserProfile {
	if p.AvatarURL != nil {
		avatar := *p.AvatarURL
		p.AvatarURL = &avatar
	}
	if p.Biometrics != nil {
		b := *p.Biometrics
		p.Biometrics = &b
	}
	return p
}

func (ps *ProfileStore) Create(_ context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	s := ps.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.UserID]; exists {
		return nil, repository.ErrDuplicate
	}
	now := s.now()
	profile.CreatedAt, profile.UpdatedAt = now, now
	profile = cloneProfile(profile)
	s.profiles[profile.UserID] = record[models.UserProfile]{value: profile, seq: s.nextSeq()}
	out := cloneProfile(profile)
	return &out, nil
}

func (ps *ProfileStore) GetByUserID(_ context.Context, userID string) (*models.UserProfile, error) {
	s := ps.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneProfile(rec.value)
	return &out, nil
}

func (ps *ProfileStore) UpdatePartial(_ context.Context, userID string, req repository.UpdateUserProfileInput) (*models.UserProfile, error) {
	s := ps.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.DisplayName != nil {
		rec.value.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		avatar := *req.AvatarURL
		rec.value.AvatarURL = &avatar
	}
	if req.Biometrics != nil {
		b := *req.Biometrics
		rec.value.Biometrics = &b
	}
	rec.value.UpdatedAt = s.now()
	s.profiles[userID] = rec
	out := cloneProfile(rec.value)
	return &out, nil
}

type OnboardingStore struct{ s *Store }

func cloneOnboarding(r models.OnboardingRecord) models.OnboardingRecord {
	r.FitnessGoals = append([]string(nil), r.FitnessGoals...)
	return r
}

func (obs *OnboardingStore) Submit(_ context.Context, rec models.OnboardingRecord, goal *models.Goal) (*models.OnboardingResult, error) {
	s := obs.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.onboarding[rec.UserID]; exists {
		return nil, repository.ErrDuplicate
	}
	if goal != nil {
		if _, exists := s.goals[goal.ID]; exists {
			return nil, repository.ErrDuplicate
		}
	}

	stored := cloneOnboarding(rec)
	s.onboarding[rec.UserID] = record[models.OnboardingRecord]{value: stored, seq: s.nextSeq()}

	if profile, ok := s.profiles[rec.UserID]; ok {
		b := rec.Biometrics
		profile.value.Biometrics = &b
		profile.value.UpdatedAt = s.now()
		s.profiles[rec.UserID] = profile
	}

	result := &models.OnboardingResult{}
	out := cloneOnboarding(stored)
	result.Onboarding = &out
	if goal != nil {
		created := s.insertGoal(*goal)
		result.Goal = &created
	}
	return result, nil
}

func (obs *OnboardingStore) GetByUserID(_ context.Context, userID string) (*models.OnboardingRecord, error) {
	s := obs.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.onboarding[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneOnboarding(rec.value)
	return &out, nil
}

func (obs *OnboardingStore) Delete(_ context.Context, userID string) error {
	s := obs.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.onboarding[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(s.onboarding, userID)
	return nil
}

type GoalStore struct{ s *Store }

// insertGoal expects s.mu to be held.
func (s *Store) insertGoal(goal models.Goal) models.Goal {
	now := s.now()
	goal.CreatedAt, goal.UpdatedAt = now, now
	s.goals[goal.ID] = record[models.Goal]{value: goal, seq: s.nextSeq()}
	return goal
}

func (gs *GoalStore) Create(_ context.Context, goal models.Goal) (*models.Goal, error) {
	s := gs.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.goals[goal.ID]; exists {
		return nil, repository.ErrDuplicate
	}
	created := s.insertGoal(goal)
	return &created, nil
}

func (gs *GoalStore) ListByUserID(_ context.Context, userID string) ([]models.Goal, error) {
	s := gs.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := newestFirst(s.goals,
		func(g models.Goal) string { return g.UserID },
		func(g models.Goal) time.Time { return g.CreatedAt },
		userID)
	goals := make([]models.Goal, len(recs))
	for i, rec := range recs {
		goals[i] = rec.value
	}
	return goals, nil
}

// ownedGoal expects s.mu to be held.
func (s *Store) ownedGoal(userID, goalID string) (record[models.Goal], bool) {
	rec, ok := s.goals[goalID]
	if !ok || rec.value.UserID != userID {
		return record[models.Goal]{}, false
	}
	return rec, true
}

func (gs *GoalStore) Get(_ context.Context, userID, goalID string) (*models.Goal, error) {
	s := gs.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.ownedGoal(userID, goalID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	goal := rec.value
	return &goal, nil
}

func (gs *GoalStore) UpdateProgress(_ context.Context, userID, goalID string, currentValue float64) (*models.Goal, error) {
	return gs.update(userID, goalID, func(g *models.Goal) {
		g.CurrentValue = currentValue
	})
}

func (gs *GoalStore) UpdatePartial(_ context.Context, userID, goalID string, req repository.UpdateGoalInput) (*models.Goal, error) {
	return gs.update(userID, goalID, func(g *models.Goal) {
		if req.Type != nil {
			g.Type = *req.Type
		}
		if req.TargetValue != nil {
			g.TargetValue = *req.TargetValue
		}
		if req.Unit != nil {
			g.Unit = *req.Unit
		}
		if req.StartDate != nil {
			g.StartDate = *req.StartDate
		}
		if req.TargetDate != nil {
			g.TargetDate = *req.TargetDate
		}
		if req.IsActive != nil {
			g.IsActive = *req.IsActive
		}
	})
}

func (gs *GoalStore) update(userID, goalID string, apply func(*models.Goal)) (*models.Goal, error) {
	s := gs.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ownedGoal(userID, goalID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	apply(&rec.value)
	rec.value.UpdatedAt = s.now()
	s.goals[goalID] = rec
	goal := rec.value
	return &goal, nil
}

func (gs *GoalStore) Delete(_ context.Context, userID, goalID string) error {
	s := gs.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ownedGoal(userID, goalID); !ok {
		return repository.ErrNotFound
	}
	delete(s.goals, goalID)
	return nil
}

type PlanStore struct{ s *Store }

func clonePlan(p models.WorkoutPlan) models.WorkoutPlan {
	p.Exercises = models.ClonePlanExercises(p.Exercises)
	if p.Exercises == nil {
		p.Exercises = []models.PlanExercise{}
	}
	return p
}

func (ps *PlanStore) Create(_ context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error) {
	s := ps.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plans[plan.ID]; exists {
		return nil, repository.ErrDuplicate
	}
	now := s.now()
	plan.CreatedAt, plan.UpdatedAt = now, now
	plan = clonePlan(plan)
	s.plans[plan.ID] = record[models.WorkoutPlan]{value: plan, seq: s.nextSeq()}
	out := clonePlan(plan)
	return &out, nil
}

func (ps *PlanStore) ListByUserID(_ context.Context, userID string) ([]models.WorkoutPlan, error) {
	s := ps.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := newestFirst(s.plans,
		func(p models.WorkoutPlan) string { return p.UserID },
		func(p models.WorkoutPlan) time.Time { return p.CreatedAt },
		userID)
	plans := make([]models.WorkoutPlan, len(recs))
	for i, rec := range recs {
		plans[i] = clonePlan(rec.value)
	}
	return plans, nil
}

func (ps *PlanStore) Get(_ context.Context, userID, planID string) (*models.WorkoutPlan, error) {
	s := ps.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.plans[planID]
	if !ok || rec.value.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := clonePlan(rec.value)
	return &out, nil
}

func (ps *PlanStore) UpdatePartial(_ context.Context, userID, planID string, req repository.UpdatePlanInput) (*models.WorkoutPlan, error) {
	s := ps.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.plans[planID]
	if !ok || rec.value.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if req.Name != nil {
		rec.value.Name = *req.Name
	}
	if req.DurationWeeks != nil {
		rec.value.DurationWeeks = *req.DurationWeeks
	}
	if req.SessionsPerWeek != nil {
		rec.value.SessionsPerWeek = *req.SessionsPerWeek
	}
	if req.Difficulty != nil {
		rec.value.Difficulty = *req.Difficulty
	}
	if req.Exercises != nil {
		rec.value.Exercises = models.ClonePlanExercises(req.Exercises)
	}
	rec.value.UpdatedAt = s.now()
	s.plans[planID] = rec
	out := clonePlan(rec.value)
	return &out, nil
}

func (ps *PlanStore) Delete(_ context.Context, userID, planID string) error {
	s := ps.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.plans[planID]
	if !ok || rec.value.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.plans, planID)
	return nil
}

type SessionStore struct{ s *Store }

func cloneSession(ws models.WorkoutSession) models.WorkoutSession {
	ws.Exercises = models.CloneProgress(ws.Exercises)
	if ws.Exercises == nil {
		ws.Exercises = []models.ExerciseProgress{}
	}
	if ws.CompletedAt != nil {
		at := *ws.CompletedAt
		ws.CompletedAt = &at
	}
	return ws
}

func (ss *SessionStore) Create(_ context.Context, session models.WorkoutSession) (*models.WorkoutSession, error) {
	s := ss.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return nil, repository.ErrDuplicate
	}
	session = cloneSession(session)
	s.sessions[session.ID] = record[models.WorkoutSession]{value: session, seq: s.nextSeq()}
	out := cloneSession(session)
	return &out, nil
}

func (ss *SessionStore) ListByUserID(_ context.Context, userID string) ([]models.WorkoutSession, error) {
	s := ss.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := newestFirst(s.sessions,
		func(ws models.WorkoutSession) string { return ws.UserID },
		func(ws models.WorkoutSession) time.Time { return ws.StartedAt },
		userID)
	sessions := make([]models.WorkoutSession, len(recs))
	for i, rec := range recs {
		sessions[i] = cloneSession(rec.value)
	}
	return sessions, nil
}

func (ss *SessionStore) Get(_ context.Context, userID, sessionID string) (*models.WorkoutSession, error) {
	s := ss.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[sessionID]
	if !ok || rec.value.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := cloneSession(rec.value)
	return &out, nil
}

func (ss *SessionStore) UpdateExercises(_ context.Context, userID, sessionID string, exercises []models.ExerciseProgress) (*models.WorkoutSession, error) {
	s := ss.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok || rec.value.UserID != userID || rec.value.CompletedAt != nil {
		return nil, repository.ErrNotFound
	}
	rec.value.Exercises = models.CloneProgress(exercises)
	s.sessions[sessionID] = rec
	out := cloneSession(rec.value)
	return &out, nil
}

func (ss *SessionStore) Complete(_ context.Context, userID, sessionID string, at time.Time) (*models.WorkoutSession, error) {
	s := ss.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok || rec.value.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if rec.value.CompletedAt == nil {
		completed := at
		rec.value.CompletedAt = &completed
		s.sessions[sessionID] = rec
	}
	out := cloneSession(rec.value)
	return &out, nil
}

type AccountStore struct{ s *Store }

func (as *AccountStore) DeleteUserData(_ context.Context, userID string) error {
	s := as.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, rec := range s.sessions {
		if rec.value.UserID == userID {
			delete(s.sessions, id)
		}
	}
	for id, rec := range s.plans {
		if rec.value.UserID == userID {
			delete(s.plans, id)
		}
	}
	for id, rec := range s.goals {
		if rec.value.UserID == userID {
			delete(s.goals, id)
		}
	}
	delete(s.onboarding, userID)
	delete(s.profiles, userID)
	return nil
}

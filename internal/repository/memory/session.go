package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository is an in-memory store of exercise sessions.
//
// Concurrent updates to the same session are last-write-wins: the mutex
// keeps the map consistent but there is no version check across requests.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions []model.ExerciseSession
	index    map[string]int
	now      func() time.Time
}

// NewSessionRepository creates an empty SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{index: make(map[string]int), now: time.Now}
}

// Create inserts a session, minting its id and stamping the start time.
func (r *SessionRepository) Create(_ context.Context, params model.CreateSessionParams) (model.ExerciseSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := model.ExerciseSession{
		ID:            uuid.NewString(),
		UserID:        params.UserID,
		ExerciseID:    params.ExerciseID,
		StartTime:     r.now(),
		CompletedSets: params.CompletedSets,
		CompletedReps: params.CompletedReps,
		Status:        params.Status,
	}
	r.index[session.ID] = len(r.sessions)
	r.sessions = append(r.sessions, session)

	return session, nil
}

// GetByID returns the session with the given id.
func (r *SessionRepository) GetByID(_ context.Context, id string) (model.ExerciseSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.ExerciseSession{}, model.ErrNotFound
	}
	return r.sessions[i], nil
}

// ListByUser returns the user's sessions, newest first. When day is non-nil
// only sessions started on that server-local calendar day are kept.
func (r *SessionRepository) ListByUser(_ context.Context, userID string, day *time.Time) ([]model.ExerciseSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ExerciseSession, 0)
	for _, session := range r.sessions {
		if session.UserID != userID {
			continue
		}
		if day != nil && !model.SameLocalDay(session.StartTime, *day) {
			continue
		}
		out = append(out, session)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})

	return out, nil
}

// Update applies the patch to the session with the given id. Unset patch
// fields leave the stored values untouched.
func (r *SessionRepository) Update(_ context.Context, id string, patch model.SessionPatch) (model.ExerciseSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.ExerciseSession{}, model.ErrNotFound
	}

	session := r.sessions[i]
	if patch.EndTime != nil {
		session.EndTime = patch.EndTime
	}
	if patch.CompletedSets != nil {
		session.CompletedSets = *patch.CompletedSets
	}
	if patch.CompletedReps != nil {
		session.CompletedReps = *patch.CompletedReps
	}
	if patch.Status != nil {
		session.Status = *patch.Status
	}
	r.sessions[i] = session

	return session, nil
}

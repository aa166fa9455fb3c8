package model

import (
	"context"
	"time"
)

// SessionStore defines persistence operations for exercise sessions.
type SessionStore interface {
	Create(ctx context.Context, params CreateSessionParams) (ExerciseSession, error)
	GetByID(ctx context.Context, id string) (ExerciseSession, error)
	// ListByUser returns the user's sessions, newest first. When day is
	// non-nil only sessions started on that calendar day are returned.
	ListByUser(ctx context.Context, userID string, day *time.Time) ([]ExerciseSession, error)
	Update(ctx context.Context, id string, patch SessionPatch) (ExerciseSession, error)
}

// ExerciseSession represents one attempt at a catalog exercise.
// ExerciseID is a weak reference: the exercise is not required to exist
// and deleting is not cascaded (exercises are never deleted anyway).
type ExerciseSession struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	ExerciseID    string        `json:"exerciseId"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       *time.Time    `json:"endTime"`
	CompletedSets int           `json:"completedSets"`
	CompletedReps int           `json:"completedReps"`
	Status        SessionStatus `json:"status"`
}

// CreateSessionParams contains parameters to start a session.
// StartTime is assigned by the store.
type CreateSessionParams struct {
	UserID        string        `json:"userId"`
	ExerciseID    string        `json:"exerciseId"`
	CompletedSets int           `json:"completedSets"`
	CompletedReps int           `json:"completedReps"`
	Status        SessionStatus `json:"status"`
}

// SessionPatch lists the mutable fields of a session. Nil means leave
// unchanged. Identity and owner are deliberately not patchable.
type SessionPatch struct {
	EndTime       *time.Time     `json:"endTime"`
	CompletedSets *int           `json:"completedSets"`
	CompletedReps *int           `json:"completedReps"`
	Status        *SessionStatus `json:"status"`
}

// SessionStatus enumerates session lifecycle states.
type SessionStatus string

const (
	// StatusPending is the initial state of a scheduled session.
	StatusPending SessionStatus = "pending"
	// StatusInProgress marks a session the user has started.
	StatusInProgress SessionStatus = "in_progress"
	// StatusCompleted is a terminal state for finished sessions.
	StatusCompleted SessionStatus = "completed"
	// StatusSkipped is a terminal state for abandoned sessions.
	StatusSkipped SessionStatus = "skipped"
)

// Valid reports whether s is a known session status.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are defined from s.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// defaultExercises is the catalog seeded at process start.
var defaultExercises = []model.CreateExerciseParams{
	{
		Name:             "Leg Extensions",
		Description:      "3 sets of 15 repetitions",
		TargetSets:       3,
		TargetReps:       15,
		EstimatedMinutes: 15,
		Category:         model.CategoryStrength,
	},
	{
		Name:             "Range of Motion",
		Description:      "Slow flexion and extension",
		TargetSets:       2,
		TargetReps:       10,
		EstimatedMinutes: 10,
		Category:         model.CategoryFlexibility,
	},
	{
		Name:             "Balance Training",
		Description:      "Single leg stands - 30 seconds each",
		TargetSets:       3,
		TargetReps:       1,
		EstimatedMinutes: 10,
		Category:         model.CategoryBalance,
	},
}

// Exercise implements catalog and session operations.
type Exercise struct {
	exercises model.ExerciseStore
	sessions  model.SessionStore
	logger    *logger.Logger
}

// NewExercise creates a new Exercise service.
func NewExercise(exercises model.ExerciseStore, sessions model.SessionStore, logger *logger.Logger) *Exercise {
	return &Exercise{exercises: exercises, sessions: sessions, logger: logger}
}

// SeedDefaults inserts the fixed default catalog. Called once at startup.
func (s *Exercise) SeedDefaults(ctx context.Context) error {
	for _, params := range defaultExercises {
		if _, err := s.exercises.Create(ctx, params); err != nil {
			return fmt.Errorf("failed to seed exercise %q: %w", params.Name, err)
		}
	}
	return nil
}

// Catalog returns the shared exercise catalog.
func (s *Exercise) Catalog(ctx context.Context) ([]model.Exercise, error) {
	exercises, err := s.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return exercises, nil
}

// StartSession validates and creates a session. The exercise reference is
// deliberately not checked for existence.
func (s *Exercise) StartSession(ctx context.Context, params model.CreateSessionParams) (model.ExerciseSession, error) {
	if params.UserID == "" {
		return model.ExerciseSession{}, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if params.ExerciseID == "" {
		return model.ExerciseSession{}, fmt.Errorf("%w: exerciseId is required", model.ErrValidation)
	}
	if params.Status == "" {
		params.Status = model.StatusPending
	}
	if !params.Status.Valid() {
		return model.ExerciseSession{}, fmt.Errorf("%w: unknown session status %q", model.ErrValidation, params.Status)
	}
	if params.CompletedSets < 0 || params.CompletedReps < 0 {
		return model.ExerciseSession{}, fmt.Errorf("%w: completed counts must not be negative", model.ErrValidation)
	}

	session, err := s.sessions.Create(ctx, params)
	if err != nil {
		return model.ExerciseSession{}, fmt.Errorf("failed to create exercise session: %w", err)
	}

	return session, nil
}

// SessionsForDay returns the user's sessions, optionally restricted to one
// server-local calendar day, newest first.
func (s *Exercise) SessionsForDay(ctx context.Context, userID string, day *time.Time) ([]model.ExerciseSession, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise sessions: %w", err)
	}

	return sessions, nil
}

// UpdateSession applies a patch to a session. Transitions out of a terminal
// state (completed, skipped) are rejected.
func (s *Exercise) UpdateSession(ctx context.Context, id string, patch model.SessionPatch) (model.ExerciseSession, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return model.ExerciseSession{}, fmt.Errorf("%w: unknown session status %q", model.ErrValidation, *patch.Status)
	}
	if (patch.CompletedSets != nil && *patch.CompletedSets < 0) ||
		(patch.CompletedReps != nil && *patch.CompletedReps < 0) {
		return model.ExerciseSession{}, fmt.Errorf("%w: completed counts must not be negative", model.ErrValidation)
	}

	current, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return model.ExerciseSession{}, fmt.Errorf("failed to get exercise session: %w", err)
	}
	if patch.Status != nil && current.Status.Terminal() && *patch.Status != current.Status {
		return model.ExerciseSession{}, fmt.Errorf("%w: session is already %s", model.ErrValidation, current.Status)
	}

	session, err := s.sessions.Update(ctx, id, patch)
	if err != nil {
		return model.ExerciseSession{}, fmt.Errorf("failed to update exercise session: %w", err)
	}

	return session, nil
}

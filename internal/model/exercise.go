package model

import "context"

// ExerciseStore defines persistence operations for the exercise catalog.
// The catalog is shared across all users and append-only.
type ExerciseStore interface {
	Create(ctx context.Context, params CreateExerciseParams) (Exercise, error)
	GetByID(ctx context.Context, id string) (Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
}

// Exercise represents a rehabilitation exercise in the shared catalog.
type Exercise struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	TargetSets       int              `json:"targetSets"`
	TargetReps       int              `json:"targetReps"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Category         ExerciseCategory `json:"category"`
}

// CreateExerciseParams contains parameters to add a catalog exercise.
type CreateExerciseParams struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	TargetSets       int              `json:"targetSets"`
	TargetReps       int              `json:"targetReps"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Category         ExerciseCategory `json:"category"`
}

// ExerciseCategory enumerates exercise kinds.
type ExerciseCategory string

const (
	// CategoryStrength is a strength-building exercise.
	CategoryStrength ExerciseCategory = "strength"
	// CategoryFlexibility is a range-of-motion exercise.
	CategoryFlexibility ExerciseCategory = "flexibility"
	// CategoryBalance is a balance-training exercise.
	CategoryBalance ExerciseCategory = "balance"
)

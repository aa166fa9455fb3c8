package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.ExerciseStore = (*ExerciseRepository)(nil)

// ExerciseRepository is an in-memory store of the shared exercise catalog.
type ExerciseRepository struct {
	mu        sync.RWMutex
	exercises []model.Exercise
	index     map[string]int
}

// NewExerciseRepository creates an empty ExerciseRepository.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{index: make(map[string]int)}
}

// Create inserts a catalog exercise, minting its id.
func (r *ExerciseRepository) Create(_ context.Context, params model.CreateExerciseParams) (model.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise := model.Exercise{
		ID:               uuid.NewString(),
		Name:             params.Name,
		Description:      params.Description,
		TargetSets:       params.TargetSets,
		TargetReps:       params.TargetReps,
		EstimatedMinutes: params.EstimatedMinutes,
		Category:         params.Category,
	}
	r.index[exercise.ID] = len(r.exercises)
	r.exercises = append(r.exercises, exercise)

	return exercise, nil
}

// GetByID returns the exercise with the given id.
func (r *ExerciseRepository) GetByID(_ context.Context, id string) (model.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Exercise{}, model.ErrNotFound
	}
	return r.exercises[i], nil
}

// List returns the full catalog in insertion order.
func (r *ExerciseRepository) List(_ context.Context) ([]model.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Exercise, len(r.exercises))
	copy(out, r.exercises)
	return out, nil
}

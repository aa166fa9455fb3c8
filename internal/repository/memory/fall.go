package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.FallStore = (*FallRepository)(nil)

// FallRepository is an in-memory store of fall detections.
type FallRepository struct {
	mu    sync.RWMutex
	falls []model.FallDetection
	index map[string]int
	now   func() time.Time
}

// NewFallRepository creates an empty FallRepository.
func NewFallRepository() *FallRepository {
	return &FallRepository{index: make(map[string]int), now: time.Now}
}

// Create inserts a fall event, minting its id and stamping the server time.
func (r *FallRepository) Create(_ context.Context, params model.CreateFallParams) (model.FallDetection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fall := model.FallDetection{
		ID:                 uuid.NewString(),
		UserID:             params.UserID,
		Timestamp:          r.now(),
		Severity:           params.Severity,
		IsConfirmed:        params.IsConfirmed,
		ResponseTime:       params.ResponseTime,
		Location:           params.Location,
		EmergencyContacted: params.EmergencyContacted,
	}
	r.index[fall.ID] = len(r.falls)
	r.falls = append(r.falls, fall)

	return fall, nil
}

// GetByID returns the fall event with the given id.
func (r *FallRepository) GetByID(_ context.Context, id string) (model.FallDetection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.FallDetection{}, model.ErrNotFound
	}
	return r.falls[i], nil
}

// ListByUser returns the user's fall events, newest first, truncated to
// limit. A non-positive limit falls back to model.DefaultFallHistoryLimit.
func (r *FallRepository) ListByUser(_ context.Context, userID string, limit int) ([]model.FallDetection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = model.DefaultFallHistoryLimit
	}

	out := make([]model.FallDetection, 0)
	for _, fall := range r.falls {
		if fall.UserID == userID {
			out = append(out, fall)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// Update applies the patch to the fall event with the given id.
func (r *FallRepository) Update(_ context.Context, id string, patch model.FallPatch) (model.FallDetection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.FallDetection{}, model.ErrNotFound
	}

	fall := r.falls[i]
	if patch.IsConfirmed != nil {
		fall.IsConfirmed = *patch.IsConfirmed
	}
	if patch.ResponseTime != nil {
		fall.ResponseTime = patch.ResponseTime
	}
	if patch.Location != nil {
		fall.Location = patch.Location
	}
	if patch.EmergencyContacted != nil {
		fall.EmergencyContacted = *patch.EmergencyContacted
	}
	r.falls[i] = fall

	return fall, nil
}

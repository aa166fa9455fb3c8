package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.SensorStore = (*SensorRepository)(nil)

// SensorRepository is an in-memory, append-only store of sensor readings.
type SensorRepository struct {
	mu       sync.RWMutex
	readings []model.SensorReading
	now      func() time.Time
}

// NewSensorRepository creates an empty SensorRepository.
func NewSensorRepository() *SensorRepository {
	return &SensorRepository{now: time.Now}
}

// Create inserts a reading, minting its id and stamping the server time.
func (r *SensorRepository) Create(_ context.Context, params model.CreateSensorReadingParams) (model.SensorReading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	connected := true
	if params.IsConnected != nil {
		connected = *params.IsConnected
	}

	reading := model.SensorReading{
		ID:             uuid.NewString(),
		UserID:         params.UserID,
		Timestamp:      r.now(),
		StepCount:      params.StepCount,
		FlexionAngle:   params.FlexionAngle,
		ExtensionAngle: params.ExtensionAngle,
		StabilityScore: params.StabilityScore,
		BatteryLevel:   params.BatteryLevel,
		IsConnected:    connected,
	}
	r.readings = append(r.readings, reading)

	return reading, nil
}

// GetLatest returns the reading with the maximum timestamp for the user.
// Among readings with equal timestamps the earliest inserted wins.
func (r *SensorRepository) GetLatest(_ context.Context, userID string) (model.SensorReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest model.SensorReading
	found := false
	for _, reading := range r.readings {
		if reading.UserID != userID {
			continue
		}
		if !found || reading.Timestamp.After(latest.Timestamp) {
			latest = reading
			found = true
		}
	}
	if !found {
		return model.SensorReading{}, model.ErrNotFound
	}
	return latest, nil
}

// ListByUser returns the user's readings, newest first, truncated to limit.
// A non-positive limit falls back to model.DefaultSensorHistoryLimit.
func (r *SensorRepository) ListByUser(_ context.Context, userID string, limit int) ([]model.SensorReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = model.DefaultSensorHistoryLimit
	}

	out := make([]model.SensorReading, 0)
	for _, reading := range r.readings {
		if reading.UserID == userID {
			out = append(out, reading)
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

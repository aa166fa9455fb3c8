package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.AlertStore = (*AlertRepository)(nil)

// AlertRepository is an in-memory store of alerts.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts []model.Alert
	index  map[string]int
	now    func() time.Time
}

// NewAlertRepository creates an empty AlertRepository.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{index: make(map[string]int), now: time.Now}
}

// Create inserts an alert, minting its id and stamping the server time.
func (r *AlertRepository) Create(_ context.Context, params model.CreateAlertParams) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert := model.Alert{
		ID:        uuid.NewString(),
		UserID:    params.UserID,
		Type:      params.Type,
		Title:     params.Title,
		Message:   params.Message,
		Severity:  params.Severity,
		Timestamp: r.now(),
	}
	r.index[alert.ID] = len(r.alerts)
	r.alerts = append(r.alerts, alert)

	return alert, nil
}

// ListByUser returns the user's alerts, newest first, truncated to limit.
// A non-positive limit falls back to model.DefaultAlertHistoryLimit.
func (r *AlertRepository) ListByUser(_ context.Context, userID string, limit int) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = model.DefaultAlertHistoryLimit
	}

	out := make([]model.Alert, 0)
	for _, alert := range r.alerts {
		if alert.UserID == userID {
			out = append(out, alert)
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

// MarkRead flips the alert's IsRead flag to true. Idempotent.
func (r *AlertRepository) MarkRead(_ context.Context, id string) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.Alert{}, model.ErrNotFound
	}

	alert := r.alerts[i]
	alert.IsRead = true
	r.alerts[i] = alert

	return alert, nil
}

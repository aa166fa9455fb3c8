package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.StatsStore = (*StatsRepository)(nil)

// StatsRepository is an in-memory store of daily statistics. It enforces at
// most one row per (user, local calendar day).
type StatsRepository struct {
	mu    sync.RWMutex
	stats []model.DailyStats
	index map[string]int
}

// NewStatsRepository creates an empty StatsRepository.
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{index: make(map[string]int)}
}

// Create inserts a daily-stats row, minting its id. A second row for the
// same user and calendar day is rejected with model.ErrDuplicate without
// writing anything.
func (r *StatsRepository) Create(_ context.Context, params model.CreateDailyStatsParams) (model.DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.stats {
		if row.UserID == params.UserID && model.SameLocalDay(row.Date, params.Date) {
			return model.DailyStats{}, model.ErrDuplicate
		}
	}

	stats := model.DailyStats{
		ID:               uuid.NewString(),
		UserID:           params.UserID,
		Date:             params.Date,
		TotalSteps:       params.TotalSteps,
		ExerciseMinutes:  params.ExerciseMinutes,
		FallCount:        params.FallCount,
		AverageStability: params.AverageStability,
		GoalAchieved:     params.GoalAchieved,
	}
	r.index[stats.ID] = len(r.stats)
	r.stats = append(r.stats, stats)

	return stats, nil
}

// ListByUser returns the user's most recently dated rows, newest first,
// capped at days. A non-positive count falls back to model.DefaultStatsDays.
func (r *StatsRepository) ListByUser(_ context.Context, userID string, days int) ([]model.DailyStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if days <= 0 {
		days = model.DefaultStatsDays
	}

	out := make([]model.DailyStats, 0)
	for _, row := range r.stats {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > days {
		out = out[:days]
	}

	return out, nil
}

// UpdateByDate applies the patch to the user's row for the given calendar
// day. Returns model.ErrNotFound when no row exists for that day.
func (r *StatsRepository) UpdateByDate(_ context.Context, userID string, date time.Time, patch model.StatsPatch) (model.DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.stats {
		if row.UserID != userID || !model.SameLocalDay(row.Date, date) {
			continue
		}
		if patch.TotalSteps != nil {
			row.TotalSteps = *patch.TotalSteps
		}
		if patch.ExerciseMinutes != nil {
			row.ExerciseMinutes = *patch.ExerciseMinutes
		}
		if patch.FallCount != nil {
			row.FallCount = *patch.FallCount
		}
		if patch.AverageStability != nil {
			row.AverageStability = patch.AverageStability
		}
		if patch.GoalAchieved != nil {
			row.GoalAchieved = *patch.GoalAchieved
		}
		r.stats[i] = row
		return row, nil
	}

	return model.DailyStats{}, model.ErrNotFound
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// Stats implements daily statistics operations.
type Stats struct {
	store  model.StatsStore
	logger *logger.Logger
}

// NewStats creates a new Stats service.
func NewStats(store model.StatsStore, logger *logger.Logger) *Stats {
	return &Stats{store: store, logger: logger}
}

// RecordDaily validates and stores a daily-stats row. One row per user and
// calendar day: a duplicate is rejected without writing.
func (s *Stats) RecordDaily(ctx context.Context, params model.CreateDailyStatsParams) (model.DailyStats, error) {
	if params.UserID == "" {
		return model.DailyStats{}, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if params.Date.IsZero() {
		return model.DailyStats{}, fmt.Errorf("%w: date is required", model.ErrValidation)
	}
	if params.TotalSteps < 0 || params.ExerciseMinutes < 0 || params.FallCount < 0 {
		return model.DailyStats{}, fmt.Errorf("%w: counts must not be negative", model.ErrValidation)
	}
	if params.AverageStability != nil && (*params.AverageStability < 0 || *params.AverageStability > 100) {
		return model.DailyStats{}, fmt.Errorf("%w: averageStability must be between 0 and 100", model.ErrValidation)
	}

	stats, err := s.store.Create(ctx, params)
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("failed to create daily stats: %w", err)
	}

	return stats, nil
}

// History returns the user's most recently dated rows, newest first.
func (s *Stats) History(ctx context.Context, userID string, days int) ([]model.DailyStats, error) {
	stats, err := s.store.ListByUser(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}

	return stats, nil
}

// UpdateForDay patches the user's row for the given calendar day.
func (s *Stats) UpdateForDay(ctx context.Context, userID string, date time.Time, patch model.StatsPatch) (model.DailyStats, error) {
	stats, err := s.store.UpdateByDate(ctx, userID, date, patch)
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("failed to update daily stats: %w", err)
	}

	return stats, nil
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// StatsService defines business operations for daily statistics.
type StatsService interface {
	RecordDaily(ctx context.Context, params model.CreateDailyStatsParams) (model.DailyStats, error)
	History(ctx context.Context, userID string, days int) ([]model.DailyStats, error)
}

// Stats handles HTTP endpoints for daily statistics.
type Stats struct {
	service StatsService
	logger  *logger.Logger
}

// NewStats creates a new Stats handler.
func NewStats(service StatsService, logger *logger.Logger) *Stats {
	return &Stats{service: service, logger: logger}
}

// GetHistory returns the user's most recent daily-stats rows.
func (h *Stats) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	stats, err := h.service.History(r.Context(), userID, queryInt(r, "days"))
	if err != nil {
		h.logger.Error("failed to list daily stats", "user_id", userID, "error", err)
		handleError(w, err, "daily stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Create records a day's statistics.
func (h *Stats) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateDailyStatsParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid daily stats data")
		return
	}

	stats, err := h.service.RecordDaily(r.Context(), params)
	if err != nil {
		handleError(w, err, "daily stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

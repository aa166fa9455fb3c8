package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// AlertService defines business operations for alerts.
type AlertService interface {
	CreateAlert(ctx context.Context, params model.CreateAlertParams) (model.Alert, error)
	History(ctx context.Context, userID string, limit int) ([]model.Alert, error)
	MarkRead(ctx context.Context, id string) (model.Alert, error)
}

// Alert handles HTTP endpoints for alerts.
type Alert struct {
	service AlertService
	logger  *logger.Logger
}

// NewAlert creates a new Alert handler.
func NewAlert(service AlertService, logger *logger.Logger) *Alert {
	return &Alert{service: service, logger: logger}
}

// GetHistory returns the user's alert feed.
func (h *Alert) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	alerts, err := h.service.History(r.Context(), userID, queryInt(r, "limit"))
	if err != nil {
		h.logger.Error("failed to list alerts", "user_id", userID, "error", err)
		handleError(w, err, "alerts")
		return
	}

	writeJSON(w, http.StatusOK, alerts)
}

// Create creates an alert.
func (h *Alert) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateAlertParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid alert data")
		return
	}

	alert, err := h.service.CreateAlert(r.Context(), params)
	if err != nil {
		handleError(w, err, "alert")
		return
	}

	writeJSON(w, http.StatusOK, alert)
}

// MarkRead flips an alert's read flag.
func (h *Alert) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	alert, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		handleError(w, err, "alert")
		return
	}

	writeJSON(w, http.StatusOK, alert)
}

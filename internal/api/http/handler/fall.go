package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// FallService defines business operations for fall detections.
type FallService interface {
	RecordFall(ctx context.Context, params model.CreateFallParams) (model.FallDetection, error)
	History(ctx context.Context, userID string, limit int) ([]model.FallDetection, error)
	UpdateFall(ctx context.Context, id string, patch model.FallPatch) (model.FallDetection, error)
}

// Fall handles HTTP endpoints for fall detections.
type Fall struct {
	service FallService
	logger  *logger.Logger
}

// NewFall creates a new Fall handler.
func NewFall(service FallService, logger *logger.Logger) *Fall {
	return &Fall{service: service, logger: logger}
}

// GetHistory returns the user's fall history.
func (h *Fall) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	falls, err := h.service.History(r.Context(), userID, queryInt(r, "limit"))
	if err != nil {
		h.logger.Error("failed to list fall detections", "user_id", userID, "error", err)
		handleError(w, err, "fall history")
		return
	}

	writeJSON(w, http.StatusOK, falls)
}

// Create records a fall event.
func (h *Fall) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateFallParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid fall detection data")
		return
	}

	fall, err := h.service.RecordFall(r.Context(), params)
	if err != nil {
		handleError(w, err, "fall detection")
		return
	}

	writeJSON(w, http.StatusOK, fall)
}

// Update partially updates a fall event.
func (h *Fall) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch model.FallPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid fall detection data")
		return
	}

	fall, err := h.service.UpdateFall(r.Context(), id, patch)
	if err != nil {
		handleError(w, err, "fall detection")
		return
	}

	writeJSON(w, http.StatusOK, fall)
}

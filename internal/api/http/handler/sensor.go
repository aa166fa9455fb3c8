package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// SensorService defines business operations for sensor readings.
type SensorService interface {
	RecordReading(ctx context.Context, params model.CreateSensorReadingParams) (model.SensorReading, error)
	Latest(ctx context.Context, userID string) (model.SensorReading, error)
	History(ctx context.Context, userID string, limit int) ([]model.SensorReading, error)
}

// Sensor handles HTTP endpoints for sensor readings.
type Sensor struct {
	service SensorService
	logger  *logger.Logger
}

// NewSensor creates a new Sensor handler.
func NewSensor(service SensorService, logger *logger.Logger) *Sensor {
	return &Sensor{service: service, logger: logger}
}

// GetLatest returns the user's most recent reading, or JSON null when the
// user has no readings yet.
func (h *Sensor) GetLatest(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	reading, err := h.service.Latest(r.Context(), userID)
	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		h.logger.Error("failed to get latest sensor reading", "user_id", userID, "error", err)
		handleError(w, err, "sensor reading")
		return
	}

	writeJSON(w, http.StatusOK, reading)
}

// GetHistory returns the user's reading history.
func (h *Sensor) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	readings, err := h.service.History(r.Context(), userID, queryInt(r, "limit"))
	if err != nil {
		h.logger.Error("failed to list sensor readings", "user_id", userID, "error", err)
		handleError(w, err, "sensor history")
		return
	}

	writeJSON(w, http.StatusOK, readings)
}

// Create records a new reading.
func (h *Sensor) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateSensorReadingParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid sensor reading data")
		return
	}

	reading, err := h.service.RecordReading(r.Context(), params)
	if err != nil {
		handleError(w, err, "sensor reading")
		return
	}

	writeJSON(w, http.StatusOK, reading)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// ExerciseService defines business operations for the exercise catalog and
// for sessions.
type ExerciseService interface {
	Catalog(ctx context.Context) ([]model.Exercise, error)
	StartSession(ctx context.Context, params model.CreateSessionParams) (model.ExerciseSession, error)
	SessionsForDay(ctx context.Context, userID string, day *time.Time) ([]model.ExerciseSession, error)
	UpdateSession(ctx context.Context, id string, patch model.SessionPatch) (model.ExerciseSession, error)
}

// Exercise handles HTTP endpoints for exercises and sessions.
type Exercise struct {
	service ExerciseService
	logger  *logger.Logger
}

// NewExercise creates a new Exercise handler.
func NewExercise(service ExerciseService, logger *logger.Logger) *Exercise {
	return &Exercise{service: service, logger: logger}
}

// GetCatalog returns the shared exercise catalog.
func (h *Exercise) GetCatalog(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.service.Catalog(r.Context())
	if err != nil {
		h.logger.Error("failed to list exercises", "error", err)
		handleError(w, err, "exercises")
		return
	}

	writeJSON(w, http.StatusOK, exercises)
}

// GetSessions returns the user's sessions, optionally restricted to the
// calendar day given by the date query parameter.
func (h *Exercise) GetSessions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	day, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date parameter")
		return
	}

	sessions, err := h.service.SessionsForDay(r.Context(), userID, day)
	if err != nil {
		h.logger.Error("failed to list exercise sessions", "user_id", userID, "error", err)
		handleError(w, err, "exercise sessions")
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// CreateSession starts a new session.
func (h *Exercise) CreateSession(w http.ResponseWriter, r *http.Request) {
	var params model.CreateSessionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise session data")
		return
	}

	session, err := h.service.StartSession(r.Context(), params)
	if err != nil {
		handleError(w, err, "exercise session")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// UpdateSession partially updates a session.
func (h *Exercise) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch model.SessionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise session data")
		return
	}

	session, err := h.service.UpdateSession(r.Context(), id, patch)
	if err != nil {
		handleError(w, err, "exercise session")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

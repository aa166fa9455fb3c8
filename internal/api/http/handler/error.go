package handler

import (
	"errors"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

// handleError maps the service error taxonomy onto response status codes:
// missing records become 404, rejected input becomes 400, everything else
// is an internal error. The entity noun keeps messages short and free of
// internal detail.
func handleError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "invalid "+entity+" data")
	default:
		writeError(w, http.StatusInternalServerError, "failed to process "+entity)
	}
}

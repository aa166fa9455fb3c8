package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/service"
)

// ExportService defines the export aggregator operations.
type ExportService interface {
	Snapshot(ctx context.Context, userID string) (service.ExportSnapshot, error)
	WriteCSV(w io.Writer, snapshot service.ExportSnapshot) error
}

// Export handles the data download endpoint.
type Export struct {
	service ExportService
	logger  *logger.Logger
}

// NewExport creates a new Export handler.
func NewExport(service ExportService, logger *logger.Logger) *Export {
	return &Export{service: service, logger: logger}
}

// Download streams the user's full data snapshot as an attached file, JSON
// by default or CSV when format=csv.
func (h *Export) Download(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	snapshot, err := h.service.Snapshot(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to build export snapshot", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export data")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		var buf bytes.Buffer
		if err := h.service.WriteCSV(&buf, snapshot); err != nil {
			h.logger.Error("failed to render csv export", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to export data")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "knee-brace-data-"+userID+".csv"))
		_, _ = w.Write(buf.Bytes())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "knee-brace-data-"+userID+".json"))
	_ = json.NewEncoder(w).Encode(snapshot)
}

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// ExportStatsDays is how many daily-stats rows an export snapshot carries.
const ExportStatsDays = 30

// csvHeader is the fixed header row of the tabular export.
var csvHeader = []string{"Date", "Steps", "Exercise Minutes", "Fall Count", "Stability Score", "Goal Achieved"}

// ExportSnapshot is a point-in-time aggregation of one user's history
// across all entity kinds.
type ExportSnapshot struct {
	SensorData       []model.SensorReading   `json:"sensorData"`
	ExerciseSessions []model.ExerciseSession `json:"exerciseSessions"`
	FallDetections   []model.FallDetection   `json:"fallDetections"`
	Alerts           []model.Alert           `json:"alerts"`
	DailyStats       []model.DailyStats      `json:"dailyStats"`
	ExportedAt       time.Time               `json:"exportedAt"`
}

// Export implements the export aggregator.
type Export struct {
	sensors  model.SensorStore
	sessions model.SessionStore
	falls    model.FallStore
	alerts   model.AlertStore
	stats    model.StatsStore
	logger   *logger.Logger
}

// NewExport creates a new Export service.
func NewExport(
	sensors model.SensorStore,
	sessions model.SessionStore,
	falls model.FallStore,
	alerts model.AlertStore,
	stats model.StatsStore,
	logger *logger.Logger,
) *Export {
	return &Export{
		sensors:  sensors,
		sessions: sessions,
		falls:    falls,
		alerts:   alerts,
		stats:    stats,
		logger:   logger,
	}
}

// Snapshot gathers the user's data across all entity kinds. Any failed
// sub-retrieval fails the whole snapshot; no partial export is produced.
func (s *Export) Snapshot(ctx context.Context, userID string) (ExportSnapshot, error) {
	readings, err := s.sensors.ListByUser(ctx, userID, 0)
	if err != nil {
		return ExportSnapshot{}, fmt.Errorf("failed to gather sensor history: %w", err)
	}
	sessions, err := s.sessions.ListByUser(ctx, userID, nil)
	if err != nil {
		return ExportSnapshot{}, fmt.Errorf("failed to gather exercise sessions: %w", err)
	}
	falls, err := s.falls.ListByUser(ctx, userID, 0)
	if err != nil {
		return ExportSnapshot{}, fmt.Errorf("failed to gather fall detections: %w", err)
	}
	alerts, err := s.alerts.ListByUser(ctx, userID, 0)
	if err != nil {
		return ExportSnapshot{}, fmt.Errorf("failed to gather alerts: %w", err)
	}
	stats, err := s.stats.ListByUser(ctx, userID, ExportStatsDays)
	if err != nil {
		return ExportSnapshot{}, fmt.Errorf("failed to gather daily stats: %w", err)
	}

	return ExportSnapshot{
		SensorData:       readings,
		ExerciseSessions: sessions,
		FallDetections:   falls,
		Alerts:           alerts,
		DailyStats:       stats,
		ExportedAt:       time.Now(),
	}, nil
}

// WriteCSV renders the snapshot's daily stats as a flat table: one header
// row, then one row per stats record. A missing stability average is
// rendered as 0; dates are calendar days without a time component.
func (s *Export) WriteCSV(w io.Writer, snapshot ExportSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range snapshot.DailyStats {
		stability := 0.0
		if row.AverageStability != nil {
			stability = *row.AverageStability
		}
		record := []string{
			row.Date.Local().Format("Mon Jan 02 2006"),
			strconv.Itoa(row.TotalSteps),
			strconv.Itoa(row.ExerciseMinutes),
			strconv.Itoa(row.FallCount),
			strconv.FormatFloat(stability, 'g', -1, 64),
			strconv.FormatBool(row.GoalAchieved),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

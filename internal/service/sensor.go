package service

import (
	"context"
	"fmt"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// Sensor implements sensor reading operations.
type Sensor struct {
	store  model.SensorStore
	logger *logger.Logger
}

// NewSensor creates a new Sensor service.
func NewSensor(store model.SensorStore, logger *logger.Logger) *Sensor {
	return &Sensor{store: store, logger: logger}
}

// RecordReading validates and stores a new reading.
func (s *Sensor) RecordReading(ctx context.Context, params model.CreateSensorReadingParams) (model.SensorReading, error) {
	if err := validateSensorParams(params); err != nil {
		return model.SensorReading{}, err
	}

	reading, err := s.store.Create(ctx, params)
	if err != nil {
		return model.SensorReading{}, fmt.Errorf("failed to create sensor reading: %w", err)
	}

	return reading, nil
}

// Latest returns the user's most recent reading, or model.ErrNotFound when
// the user has none.
func (s *Sensor) Latest(ctx context.Context, userID string) (model.SensorReading, error) {
	reading, err := s.store.GetLatest(ctx, userID)
	if err != nil {
		return model.SensorReading{}, fmt.Errorf("failed to get latest sensor reading: %w", err)
	}

	return reading, nil
}

// History returns the user's readings, newest first.
func (s *Sensor) History(ctx context.Context, userID string, limit int) ([]model.SensorReading, error) {
	readings, err := s.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensor readings: %w", err)
	}

	return readings, nil
}

func validateSensorParams(params model.CreateSensorReadingParams) error {
	if params.UserID == "" {
		return fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if params.StepCount < 0 {
		return fmt.Errorf("%w: stepCount must not be negative", model.ErrValidation)
	}
	if params.StabilityScore < 0 || params.StabilityScore > 100 {
		return fmt.Errorf("%w: stabilityScore must be between 0 and 100", model.ErrValidation)
	}
	if params.BatteryLevel < 0 || params.BatteryLevel > 100 {
		return fmt.Errorf("%w: batteryLevel must be between 0 and 100", model.ErrValidation)
	}
	return nil
}

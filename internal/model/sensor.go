package model

import (
	"context"
	"time"
)

// DefaultSensorHistoryLimit caps sensor history listings when no limit is requested.
const DefaultSensorHistoryLimit = 50

// SensorStore defines persistence operations for sensor readings.
// Readings are append-only: there is no update or delete.
type SensorStore interface {
	Create(ctx context.Context, params CreateSensorReadingParams) (SensorReading, error)
	GetLatest(ctx context.Context, userID string) (SensorReading, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]SensorReading, error)
}

// SensorReading represents one measurement reported by the knee brace.
type SensorReading struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Timestamp      time.Time `json:"timestamp"`
	StepCount      int       `json:"stepCount"`
	FlexionAngle   float64   `json:"flexionAngle"`
	ExtensionAngle float64   `json:"extensionAngle"`
	StabilityScore int       `json:"stabilityScore"`
	BatteryLevel   int       `json:"batteryLevel"`
	IsConnected    bool      `json:"isConnected"`
}

// CreateSensorReadingParams contains parameters to record a reading.
// Timestamp is assigned by the store, never by the caller.
type CreateSensorReadingParams struct {
	UserID         string  `json:"userId"`
	StepCount      int     `json:"stepCount"`
	FlexionAngle   float64 `json:"flexionAngle"`
	ExtensionAngle float64 `json:"extensionAngle"`
	StabilityScore int     `json:"stabilityScore"`
	BatteryLevel   int     `json:"batteryLevel"`
	IsConnected    *bool   `json:"isConnected"`
}

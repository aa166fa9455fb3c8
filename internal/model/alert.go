package model

import (
	"context"
	"time"
)

// DefaultAlertHistoryLimit caps alert history listings when no limit is requested.
const DefaultAlertHistoryLimit = 20

// AlertStore defines persistence operations for alerts.
// Alerts are never deleted; the only mutation is marking them read.
type AlertStore interface {
	Create(ctx context.Context, params CreateAlertParams) (Alert, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Alert, error)
	MarkRead(ctx context.Context, id string) (Alert, error)
}

// Alert represents a notification shown in the dashboard feed.
type Alert struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Type      AlertType     `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
	IsRead    bool          `json:"isRead"`
}

// CreateAlertParams contains parameters to create an alert.
// Timestamp is assigned by the store.
type CreateAlertParams struct {
	UserID   string        `json:"userId"`
	Type     AlertType     `json:"type"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}

// AlertType enumerates alert sources.
type AlertType string

const (
	AlertTypeFall     AlertType = "fall"
	AlertTypeBattery  AlertType = "battery"
	AlertTypeExercise AlertType = "exercise"
	AlertTypeDevice   AlertType = "device"
	AlertTypeGoal     AlertType = "goal"
)

// Valid reports whether t is a known alert type.
func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeFall, AlertTypeBattery, AlertTypeExercise, AlertTypeDevice, AlertTypeGoal:
		return true
	}
	return false
}

// AlertSeverity enumerates alert display severities.
type AlertSeverity string

const (
	AlertInfo    AlertSeverity = "info"
	AlertWarning AlertSeverity = "warning"
	AlertError   AlertSeverity = "error"
	AlertSuccess AlertSeverity = "success"
)

// Valid reports whether s is a known alert severity.
func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertInfo, AlertWarning, AlertError, AlertSuccess:
		return true
	}
	return false
}

package model

import (
	"context"
	"time"
)

// DefaultFallHistoryLimit caps fall history listings when no limit is requested.
const DefaultFallHistoryLimit = 20

// FallStore defines persistence operations for fall detections.
type FallStore interface {
	Create(ctx context.Context, params CreateFallParams) (FallDetection, error)
	GetByID(ctx context.Context, id string) (FallDetection, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]FallDetection, error)
	Update(ctx context.Context, id string, patch FallPatch) (FallDetection, error)
}

// FallDetection represents one detected fall event.
type FallDetection struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"userId"`
	Timestamp          time.Time    `json:"timestamp"`
	Severity           FallSeverity `json:"severity"`
	IsConfirmed        bool         `json:"isConfirmed"`
	ResponseTime       *int         `json:"responseTime"`
	Location           *string      `json:"location"`
	EmergencyContacted bool         `json:"emergencyContacted"`
}

// CreateFallParams contains parameters to record a fall event.
// Timestamp is assigned by the store.
type CreateFallParams struct {
	UserID             string       `json:"userId"`
	Severity           FallSeverity `json:"severity"`
	IsConfirmed        bool         `json:"isConfirmed"`
	ResponseTime       *int         `json:"responseTime"`
	Location           *string      `json:"location"`
	EmergencyContacted bool         `json:"emergencyContacted"`
}

// FallPatch lists the mutable fields of a fall detection.
type FallPatch struct {
	IsConfirmed        *bool   `json:"isConfirmed"`
	ResponseTime       *int    `json:"responseTime"`
	Location           *string `json:"location"`
	EmergencyContacted *bool   `json:"emergencyContacted"`
}

// FallSeverity enumerates fall severities.
type FallSeverity string

const (
	SeverityLow    FallSeverity = "low"
	SeverityMedium FallSeverity = "medium"
	SeverityHigh   FallSeverity = "high"
)

// Valid reports whether s is a known fall severity.
func (s FallSeverity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

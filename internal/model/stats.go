package model

import (
	"context"
	"time"
)

// DefaultStatsDays caps daily-stats listings when no day count is requested.
const DefaultStatsDays = 7

// StatsStore defines persistence operations for daily statistics.
// At most one row may exist per (user, local calendar day): Create rejects
// a second row for the same day with ErrDuplicate, which keeps
// UpdateByDate's lookup unambiguous.
type StatsStore interface {
	Create(ctx context.Context, params CreateDailyStatsParams) (DailyStats, error)
	// ListByUser returns the user's most recently dated rows, newest first,
	// capped at days. Gaps for missing days are not filled.
	ListByUser(ctx context.Context, userID string, days int) ([]DailyStats, error)
	UpdateByDate(ctx context.Context, userID string, date time.Time, patch StatsPatch) (DailyStats, error)
}

// DailyStats represents aggregated activity for one user on one day.
type DailyStats struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Date             time.Time `json:"date"`
	TotalSteps       int       `json:"totalSteps"`
	ExerciseMinutes  int       `json:"exerciseMinutes"`
	FallCount        int       `json:"fallCount"`
	AverageStability *float64  `json:"averageStability"`
	GoalAchieved     bool      `json:"goalAchieved"`
}

// CreateDailyStatsParams contains parameters to record a day's statistics.
type CreateDailyStatsParams struct {
	UserID           string    `json:"userId"`
	Date             time.Time `json:"date"`
	TotalSteps       int       `json:"totalSteps"`
	ExerciseMinutes  int       `json:"exerciseMinutes"`
	FallCount        int       `json:"fallCount"`
	AverageStability *float64  `json:"averageStability"`
	GoalAchieved     bool      `json:"goalAchieved"`
}

// StatsPatch lists the mutable fields of a daily-stats row.
type StatsPatch struct {
	TotalSteps       *int     `json:"totalSteps"`
	ExerciseMinutes  *int     `json:"exerciseMinutes"`
	FallCount        *int     `json:"fallCount"`
	AverageStability *float64 `json:"averageStability"`
	GoalAchieved     *bool    `json:"goalAchieved"`
}

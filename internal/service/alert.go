package service

import (
	"context"
	"fmt"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// Alert implements alert feed operations.
type Alert struct {
	store  model.AlertStore
	logger *logger.Logger
}

// NewAlert creates a new Alert service.
func NewAlert(store model.AlertStore, logger *logger.Logger) *Alert {
	return &Alert{store: store, logger: logger}
}

// CreateAlert validates and stores an alert. Severity defaults to info.
func (s *Alert) CreateAlert(ctx context.Context, params model.CreateAlertParams) (model.Alert, error) {
	if params.UserID == "" {
		return model.Alert{}, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if !params.Type.Valid() {
		return model.Alert{}, fmt.Errorf("%w: unknown alert type %q", model.ErrValidation, params.Type)
	}
	if params.Title == "" {
		return model.Alert{}, fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if params.Message == "" {
		return model.Alert{}, fmt.Errorf("%w: message is required", model.ErrValidation)
	}
	if params.Severity == "" {
		params.Severity = model.AlertInfo
	}
	if !params.Severity.Valid() {
		return model.Alert{}, fmt.Errorf("%w: unknown alert severity %q", model.ErrValidation, params.Severity)
	}

	alert, err := s.store.Create(ctx, params)
	if err != nil {
		return model.Alert{}, fmt.Errorf("failed to create alert: %w", err)
	}

	return alert, nil
}

// History returns the user's alerts, newest first.
func (s *Alert) History(ctx context.Context, userID string, limit int) ([]model.Alert, error) {
	alerts, err := s.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, nil
}

// MarkRead flips an alert's read flag. Applying it twice yields the same
// final state.
func (s *Alert) MarkRead(ctx context.Context, id string) (model.Alert, error) {
	alert, err := s.store.MarkRead(ctx, id)
	if err != nil {
		return model.Alert{}, fmt.Errorf("failed to mark alert read: %w", err)
	}

	return alert, nil
}

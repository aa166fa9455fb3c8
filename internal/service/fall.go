package service

import (
	"context"
	"fmt"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// Fall implements fall detection operations.
type Fall struct {
	store  model.FallStore
	logger *logger.Logger
}

// NewFall creates a new Fall service.
func NewFall(store model.FallStore, logger *logger.Logger) *Fall {
	return &Fall{store: store, logger: logger}
}

// RecordFall validates and stores a fall event.
func (s *Fall) RecordFall(ctx context.Context, params model.CreateFallParams) (model.FallDetection, error) {
	if params.UserID == "" {
		return model.FallDetection{}, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if !params.Severity.Valid() {
		return model.FallDetection{}, fmt.Errorf("%w: unknown fall severity %q", model.ErrValidation, params.Severity)
	}
	if params.ResponseTime != nil && *params.ResponseTime < 0 {
		return model.FallDetection{}, fmt.Errorf("%w: responseTime must not be negative", model.ErrValidation)
	}

	fall, err := s.store.Create(ctx, params)
	if err != nil {
		return model.FallDetection{}, fmt.Errorf("failed to create fall detection: %w", err)
	}

	return fall, nil
}

// History returns the user's fall events, newest first.
func (s *Fall) History(ctx context.Context, userID string, limit int) ([]model.FallDetection, error) {
	falls, err := s.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fall detections: %w", err)
	}

	return falls, nil
}

// UpdateFall applies a patch, typically to record confirmation or that an
// emergency contact was reached.
func (s *Fall) UpdateFall(ctx context.Context, id string, patch model.FallPatch) (model.FallDetection, error) {
	if patch.ResponseTime != nil && *patch.ResponseTime < 0 {
		return model.FallDetection{}, fmt.Errorf("%w: responseTime must not be negative", model.ErrValidation)
	}

	fall, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.FallDetection{}, fmt.Errorf("failed to update fall detection: %w", err)
	}

	return fall, nil
}

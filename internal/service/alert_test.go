package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

func TestAlertService_CreateAlert(t *testing.T) {
	tests := []struct {
		name      string
		params    model.CreateAlertParams
		mockSetup func(*MockAlertStore)
		wantErr   bool
	}{
		{
			name: "successful alert creation",
			params: model.CreateAlertParams{
				UserID:   "u1",
				Type:     model.AlertTypeFall,
				Title:    "Fall detected",
				Message:  "A high-impact fall was detected",
				Severity: model.AlertError,
			},
			mockSetup: func(store *MockAlertStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateAlertParams) bool {
					return p.Severity == model.AlertError
				})).Return(model.Alert{
					ID:       "a1",
					UserID:   "u1",
					Severity: model.AlertError,
				}, nil)
			},
		},
		{
			name: "empty severity defaults to info",
			params: model.CreateAlertParams{
				UserID:  "u1",
				Type:    model.AlertTypeBattery,
				Title:   "Battery low",
				Message: "Charge the brace soon",
			},
			mockSetup: func(store *MockAlertStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateAlertParams) bool {
					return p.Severity == model.AlertInfo
				})).Return(model.Alert{
					ID:       "a1",
					UserID:   "u1",
					Severity: model.AlertInfo,
				}, nil)
			},
		},
		{
			name: "missing user id",
			params: model.CreateAlertParams{
				Type:    model.AlertTypeGoal,
				Title:   "Goal reached",
				Message: "Daily step goal reached",
			},
			mockSetup: func(store *MockAlertStore) {},
			wantErr:   true,
		},
		{
			name: "unknown type",
			params: model.CreateAlertParams{
				UserID:  "u1",
				Type:    model.AlertType("weather"),
				Title:   "t",
				Message: "m",
			},
			mockSetup: func(store *MockAlertStore) {},
			wantErr:   true,
		},
		{
			name: "missing title",
			params: model.CreateAlertParams{
				UserID:  "u1",
				Type:    model.AlertTypeDevice,
				Message: "m",
			},
			mockSetup: func(store *MockAlertStore) {},
			wantErr:   true,
		},
		{
			name: "missing message",
			params: model.CreateAlertParams{
				UserID: "u1",
				Type:   model.AlertTypeDevice,
				Title:  "t",
			},
			mockSetup: func(store *MockAlertStore) {},
			wantErr:   true,
		},
		{
			name: "unknown severity",
			params: model.CreateAlertParams{
				UserID:   "u1",
				Type:     model.AlertTypeDevice,
				Title:    "t",
				Message:  "m",
				Severity: model.AlertSeverity("critical"),
			},
			mockSetup: func(store *MockAlertStore) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &MockAlertStore{}
			tt.mockSetup(mockStore)

			service := NewAlert(mockStore, logger.New(0))

			result, err := service.CreateAlert(context.Background(), tt.params)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrValidation)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestAlertService_MarkRead(t *testing.T) {
	t.Run("marks alert read", func(t *testing.T) {
		mockStore := &MockAlertStore{}
		mockStore.On("MarkRead", mock.Anything, "a1").Return(model.Alert{
			ID:   "a1",
			IsRead: true,
		}, nil)

		service := NewAlert(mockStore, logger.New(0))

		result, err := service.MarkRead(context.Background(), "a1")

		assert.NoError(t, err)
		assert.True(t, result.IsRead)
		mockStore.AssertExpectations(t)
	})

	t.Run("wraps not found", func(t *testing.T) {
		mockStore := &MockAlertStore{}
		mockStore.On("MarkRead", mock.Anything, "ghost").
			Return(model.Alert{}, model.ErrNotFound)

		service := NewAlert(mockStore, logger.New(0))

		_, err := service.MarkRead(context.Background(), "ghost")

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockStore.AssertExpectations(t)
	})
}

func TestAlertService_History(t *testing.T) {
	mockStore := &MockAlertStore{}
	mockStore.On("ListByUser", mock.Anything, "u1", 5).Return([]model.Alert{
		{ID: "a2"},
		{ID: "a1"},
	}, nil)

	service := NewAlert(mockStore, logger.New(0))

	result, err := service.History(context.Background(), "u1", 5)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockStore.AssertExpectations(t)
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

func TestExerciseHandler_GetCatalog(t *testing.T) {
	mockService := &MockExerciseService{}
	mockService.On("Catalog", mock.Anything).Return([]model.Exercise{
		{ID: "ex1", Name: "Leg Extensions"},
	}, nil)

	h := NewExercise(mockService, logger.New(0))

	req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
	rec := httptest.NewRecorder()

	h.GetCatalog(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Leg Extensions")
	mockService.AssertExpectations(t)
}

func TestExerciseHandler_GetSessions(t *testing.T) {
	t.Run("without date filter", func(t *testing.T) {
		mockService := &MockExerciseService{}
		mockService.On("SessionsForDay", mock.Anything, "u1", (*time.Time)(nil)).
			Return([]model.ExerciseSession{{ID: "s1"}}, nil)

		h := NewExercise(mockService, logger.New(0))

		req := httptest.NewRequest(http.MethodGet, "/api/exercise-sessions/u1", nil)
		req.SetPathValue("userId", "u1")
		rec := httptest.NewRecorder()

		h.GetSessions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("with calendar date filter", func(t *testing.T) {
		mockService := &MockExerciseService{}
		mockService.On("SessionsForDay", mock.Anything, "u1", mock.MatchedBy(func(day *time.Time) bool {
			return day != nil && day.Year() == 2024 && day.Month() == time.March && day.Day() == 10
		})).Return([]model.ExerciseSession{}, nil)

		h := NewExercise(mockService, logger.New(0))

		req := httptest.NewRequest(http.MethodGet, "/api/exercise-sessions/u1?date=2024-03-10", nil)
		req.SetPathValue("userId", "u1")
		rec := httptest.NewRecorder()

		h.GetSessions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		mockService := &MockExerciseService{}

		h := NewExercise(mockService, logger.New(0))

		req := httptest.NewRequest(http.MethodGet, "/api/exercise-sessions/u1?date=notadate", nil)
		req.SetPathValue("userId", "u1")
		rec := httptest.NewRecorder()

		h.GetSessions(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid date parameter")
		mockService.AssertExpectations(t)
	})
}

func TestExerciseHandler_CreateSession(t *testing.T) {
	mockService := &MockExerciseService{}
	mockService.On("StartSession", mock.Anything, mock.MatchedBy(func(p model.CreateSessionParams) bool {
		return p.UserID == "u1" && p.ExerciseID == "ex1"
	})).Return(model.ExerciseSession{
		ID:         "s1",
		UserID:     "u1",
		ExerciseID: "ex1",
		Status:     model.StatusPending,
	}, nil)

	h := NewExercise(mockService, logger.New(0))

	body := `{"userId":"u1","exerciseId":"ex1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/exercise-sessions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateSession(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	mockService.AssertExpectations(t)
}

func TestExerciseHandler_UpdateSession(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		mockService := &MockExerciseService{}
		mockService.On("UpdateSession", mock.Anything, "s1", mock.MatchedBy(func(p model.SessionPatch) bool {
			return p.Status != nil && *p.Status == model.StatusCompleted
		})).Return(model.ExerciseSession{
			ID:     "s1",
			Status: model.StatusCompleted,
		}, nil)

		h := NewExercise(mockService, logger.New(0))

		req := httptest.NewRequest(http.MethodPatch, "/api/exercise-sessions/s1", strings.NewReader(`{"status":"completed"}`))
		req.SetPathValue("id", "s1")
		rec := httptest.NewRecorder()

		h.UpdateSession(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("maps missing session to not found", func(t *testing.T) {
		mockService := &MockExerciseService{}
		mockService.On("UpdateSession", mock.Anything, "ghost", mock.Anything).
			Return(model.ExerciseSession{}, model.ErrNotFound)

		h := NewExercise(mockService, logger.New(0))

		req := httptest.NewRequest(http.MethodPatch, "/api/exercise-sessions/ghost", strings.NewReader(`{}`))
		req.SetPathValue("id", "ghost")
		rec := httptest.NewRecorder()

		h.UpdateSession(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "exercise session not found")
		mockService.AssertExpectations(t)
	})

	t.Run("maps terminal transition to bad request", func(t *testing.T) {
		mockService := &MockExerciseService{}
		mockService.On("UpdateSession", mock.Anything, "s1", mock.Anything).
			Return(model.ExerciseSession{}, model.ErrValidation)

		h := NewExercise(mockService, logger.New(0))

		req := httptest.NewRequest(http.MethodPatch, "/api/exercise-sessions/s1", strings.NewReader(`{"status":"in_progress"}`))
		req.SetPathValue("id", "s1")
		rec := httptest.NewRecorder()

		h.UpdateSession(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}

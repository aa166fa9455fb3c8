package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

// MockSensorStore mocks the SensorStore interface
type MockSensorStore struct {
	mock.Mock
}

func (m *MockSensorStore) Create(ctx context.Context, params model.CreateSensorReadingParams) (model.SensorReading, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.SensorReading), args.Error(1)
}

func (m *MockSensorStore) GetLatest(ctx context.Context, userID string) (model.SensorReading, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.SensorReading), args.Error(1)
}

func (m *MockSensorStore) ListByUser(ctx context.Context, userID string, limit int) ([]model.SensorReading, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.SensorReading), args.Error(1)
}

// MockExerciseStore mocks the ExerciseStore interface
type MockExerciseStore struct {
	mock.Mock
}

func (m *MockExerciseStore) Create(ctx context.Context, params model.CreateExerciseParams) (model.Exercise, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Exercise), args.Error(1)
}

func (m *MockExerciseStore) GetByID(ctx context.Context, id string) (model.Exercise, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Exercise), args.Error(1)
}

func (m *MockExerciseStore) List(ctx context.Context) ([]model.Exercise, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Exercise), args.Error(1)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, params model.CreateSessionParams) (model.ExerciseSession, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.ExerciseSession), args.Error(1)
}

func (m *MockSessionStore) GetByID(ctx context.Context, id string) (model.ExerciseSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ExerciseSession), args.Error(1)
}

func (m *MockSessionStore) ListByUser(ctx context.Context, userID string, day *time.Time) ([]model.ExerciseSession, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).([]model.ExerciseSession), args.Error(1)
}

func (m *MockSessionStore) Update(ctx context.Context, id string, patch model.SessionPatch) (model.ExerciseSession, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.ExerciseSession), args.Error(1)
}

// MockFallStore mocks the FallStore interface
type MockFallStore struct {
	mock.Mock
}

func (m *MockFallStore) Create(ctx context.Context, params model.CreateFallParams) (model.FallDetection, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.FallDetection), args.Error(1)
}

func (m *MockFallStore) GetByID(ctx context.Context, id string) (model.FallDetection, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.FallDetection), args.Error(1)
}

func (m *MockFallStore) ListByUser(ctx context.Context, userID string, limit int) ([]model.FallDetection, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.FallDetection), args.Error(1)
}

func (m *MockFallStore) Update(ctx context.Context, id string, patch model.FallPatch) (model.FallDetection, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.FallDetection), args.Error(1)
}

// MockAlertStore mocks the AlertStore interface
type MockAlertStore struct {
	mock.Mock
}

func (m *MockAlertStore) Create(ctx context.Context, params model.CreateAlertParams) (model.Alert, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Alert), args.Error(1)
}

func (m *MockAlertStore) ListByUser(ctx context.Context, userID string, limit int) ([]model.Alert, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertStore) MarkRead(ctx context.Context, id string) (model.Alert, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Alert), args.Error(1)
}

// MockStatsStore mocks the StatsStore interface
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) Create(ctx context.Context, params model.CreateDailyStatsParams) (model.DailyStats, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.DailyStats), args.Error(1)
}

func (m *MockStatsStore) ListByUser(ctx context.Context, userID string, days int) ([]model.DailyStats, error) {
	args := m.Called(ctx, userID, days)
	return args.Get(0).([]model.DailyStats), args.Error(1)
}

func (m *MockStatsStore) UpdateByDate(ctx context.Context, userID string, date time.Time, patch model.StatsPatch) (model.DailyStats, error) {
	args := m.Called(ctx, userID, date, patch)
	return args.Get(0).(model.DailyStats), args.Error(1)
}

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

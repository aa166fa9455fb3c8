package handler

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kneeboard/kneeboard-server/internal/model"
	"github.com/kneeboard/kneeboard-server/internal/service"
)

// MockSensorService mocks the SensorService interface
type MockSensorService struct {
	mock.Mock
}

func (m *MockSensorService) RecordReading(ctx context.Context, params model.CreateSensorReadingParams) (model.SensorReading, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.SensorReading), args.Error(1)
}

func (m *MockSensorService) Latest(ctx context.Context, userID string) (model.SensorReading, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.SensorReading), args.Error(1)
}

func (m *MockSensorService) History(ctx context.Context, userID string, limit int) ([]model.SensorReading, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.SensorReading), args.Error(1)
}

// MockExerciseService mocks the ExerciseService interface
type MockExerciseService struct {
	mock.Mock
}

func (m *MockExerciseService) Catalog(ctx context.Context) ([]model.Exercise, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Exercise), args.Error(1)
}

func (m *MockExerciseService) StartSession(ctx context.Context, params model.CreateSessionParams) (model.ExerciseSession, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.ExerciseSession), args.Error(1)
}

func (m *MockExerciseService) SessionsForDay(ctx context.Context, userID string, day *time.Time) ([]model.ExerciseSession, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).([]model.ExerciseSession), args.Error(1)
}

func (m *MockExerciseService) UpdateSession(ctx context.Context, id string, patch model.SessionPatch) (model.ExerciseSession, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.ExerciseSession), args.Error(1)
}

// MockFallService mocks the FallService interface
type MockFallService struct {
	mock.Mock
}

func (m *MockFallService) RecordFall(ctx context.Context, params model.CreateFallParams) (model.FallDetection, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.FallDetection), args.Error(1)
}

func (m *MockFallService) History(ctx context.Context, userID string, limit int) ([]model.FallDetection, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.FallDetection), args.Error(1)
}

func (m *MockFallService) UpdateFall(ctx context.Context, id string, patch model.FallPatch) (model.FallDetection, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.FallDetection), args.Error(1)
}

// MockAlertService mocks the AlertService interface
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) CreateAlert(ctx context.Context, params model.CreateAlertParams) (model.Alert, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Alert), args.Error(1)
}

func (m *MockAlertService) History(ctx context.Context, userID string, limit int) ([]model.Alert, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertService) MarkRead(ctx context.Context, id string) (model.Alert, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Alert), args.Error(1)
}

// MockStatsService mocks the StatsService interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) RecordDaily(ctx context.Context, params model.CreateDailyStatsParams) (model.DailyStats, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.DailyStats), args.Error(1)
}

func (m *MockStatsService) History(ctx context.Context, userID string, days int) ([]model.DailyStats, error) {
	args := m.Called(ctx, userID, days)
	return args.Get(0).([]model.DailyStats), args.Error(1)
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

// MockExportService mocks the ExportService interface
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Snapshot(ctx context.Context, userID string) (service.ExportSnapshot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.ExportSnapshot), args.Error(1)
}

func (m *MockExportService) WriteCSV(w io.Writer, snapshot service.ExportSnapshot) error {
	args := m.Called(w, snapshot)
	return args.Error(0)
}

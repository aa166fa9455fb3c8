// Package feed generates synthetic sensor readings on a schedule. It stands
// in for a real brace when none is paired and goes through the same store
// interfaces as real ingestion, so the rest of the system cannot tell the
// difference.
package feed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// batteryFloor is where the simulated battery stops draining.
const batteryFloor = 20

// Feed periodically appends synthetic readings for one user.
type Feed struct {
	sensors model.SensorStore
	alerts  model.AlertStore
	logger  *logger.Logger
	userID  string

	cron *cron.Cron

	mu      sync.Mutex
	battery int
	warned  bool
}

// New creates a Feed writing readings for userID.
func New(sensors model.SensorStore, alerts model.AlertStore, logger *logger.Logger, userID string) *Feed {
	return &Feed{
		sensors: sensors,
		alerts:  alerts,
		logger:  logger,
		userID:  userID,
		battery: 100,
	}
}

// Start schedules reading generation. The schedule uses cron syntax,
// including descriptors like "@every 5m".
func (f *Feed) Start(schedule string) error {
	f.cron = cron.New()
	_, err := f.cron.AddFunc(schedule, func() {
		if err := f.Emit(context.Background()); err != nil {
			f.logger.Error("synthetic feed tick failed", "user_id", f.userID, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule synthetic feed: %w", err)
	}
	f.cron.Start()
	f.logger.Info("synthetic sensor feed started", "user_id", f.userID, "schedule", schedule)

	return nil
}

// Stop halts the schedule. Safe to call on a feed that never started.
func (f *Feed) Stop() {
	if f.cron != nil {
		f.cron.Stop()
	}
}

// Emit appends one synthetic reading and, the first time the simulated
// battery reaches its floor, a low-battery alert.
func (f *Feed) Emit(ctx context.Context) error {
	f.mu.Lock()
	f.battery -= rand.IntN(3) + 1
	if f.battery < batteryFloor {
		f.battery = batteryFloor
	}
	battery := f.battery
	warn := battery == batteryFloor && !f.warned
	if warn {
		f.warned = true
	}
	f.mu.Unlock()

	connected := true
	_, err := f.sensors.Create(ctx, model.CreateSensorReadingParams{
		UserID:         f.userID,
		StepCount:      rand.IntN(1000) + 1000,
		FlexionAngle:   rand.Float64()*45 + 65,
		ExtensionAngle: rand.Float64()*15 + 5,
		StabilityScore: rand.IntN(20) + 80,
		BatteryLevel:   battery,
		IsConnected:    &connected,
	})
	if err != nil {
		return fmt.Errorf("failed to create synthetic reading: %w", err)
	}

	if warn {
		_, err := f.alerts.Create(ctx, model.CreateAlertParams{
			UserID:   f.userID,
			Type:     model.AlertTypeBattery,
			Title:    "Battery low",
			Message:  fmt.Sprintf("Device battery at %d%%, please charge your device", battery),
			Severity: model.AlertWarning,
		})
		if err != nil {
			return fmt.Errorf("failed to create low-battery alert: %w", err)
		}
	}

	return nil
}

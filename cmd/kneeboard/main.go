package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kneeboard/kneeboard-server/internal/api/http/router"
	httpServer "github.com/kneeboard/kneeboard-server/internal/api/http/server"
	"github.com/kneeboard/kneeboard-server/internal/config"
	"github.com/kneeboard/kneeboard-server/internal/feed"
	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
	"github.com/kneeboard/kneeboard-server/internal/repository/memory"
	"github.com/kneeboard/kneeboard-server/internal/server"
	"github.com/kneeboard/kneeboard-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	// All state lives in process memory: a restart starts from an empty
	// store plus the seeded exercise catalog.
	userRepo := memory.NewUserRepository()
	sensorRepo := memory.NewSensorRepository()
	exerciseRepo := memory.NewExerciseRepository()
	sessionRepo := memory.NewSessionRepository()
	fallRepo := memory.NewFallRepository()
	alertRepo := memory.NewAlertRepository()
	statsRepo := memory.NewStatsRepository()

	userService := service.NewUser(userRepo, logger)
	sensorService := service.NewSensor(sensorRepo, logger)
	exerciseService := service.NewExercise(exerciseRepo, sessionRepo, logger)
	fallService := service.NewFall(fallRepo, logger)
	alertService := service.NewAlert(alertRepo, logger)
	statsService := service.NewStats(statsRepo, logger)
	exportService := service.NewExport(sensorRepo, sessionRepo, fallRepo, alertRepo, statsRepo, logger)

	if err := exerciseService.SeedDefaults(ctx); err != nil {
		logger.Fatal("failed to seed exercise catalog", "error", err)
	}

	feedUserID := cfg.Feed.UserID
	if cfg.Seed.DemoUser {
		demo, err := userService.Register(ctx, model.CreateUserParams{
			Username: cfg.Seed.DemoUsername,
			Password: cfg.Seed.DemoPassword,
		})
		if err != nil {
			logger.Fatal("failed to create demo user", "error", err)
		}
		logger.Info("created demo user", "user_id", demo.ID, "username", demo.Username)
		if feedUserID == "" {
			feedUserID = demo.ID
		}
	}

	r := router.New(userService, sensorService, exerciseService, fallService, alertService, statsService, exportService, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	var sensorFeed *feed.Feed
	if cfg.Feed.Enabled {
		if feedUserID == "" {
			logger.Fatal("synthetic feed enabled but no user configured")
		}
		sensorFeed = feed.New(sensorRepo, alertRepo, logger, feedUserID)
		if err := sensorFeed.Start(cfg.Feed.Schedule); err != nil {
			logger.Fatal("failed to start synthetic feed", "error", err)
		}
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	if sensorFeed != nil {
		sensorFeed.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

package router

import (
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/api/http/handler"
	"github.com/kneeboard/kneeboard-server/internal/api/http/middleware"
	"github.com/kneeboard/kneeboard-server/internal/logger"
)

// Router assembles the HTTP facade: it maps the resource paths consumed by
// the dashboard onto the service layer and chains the shared middleware.
type Router struct {
	users     handler.UserService
	sensors   handler.SensorService
	exercises handler.ExerciseService
	falls     handler.FallService
	alerts    handler.AlertService
	stats     handler.StatsService
	export    handler.ExportService
	logger    *logger.Logger
}

// New creates a new Router over the given services.
func New(
	users handler.UserService,
	sensors handler.SensorService,
	exercises handler.ExerciseService,
	falls handler.FallService,
	alerts handler.AlertService,
	stats handler.StatsService,
	export handler.ExportService,
	logger *logger.Logger,
) *Router {
	return &Router{
		users:     users,
		sensors:   sensors,
		exercises: exercises,
		falls:     falls,
		alerts:    alerts,
		stats:     stats,
		export:    export,
		logger:    logger,
	}
}

// Register builds the route table and returns the wrapped handler.
func (r *Router) Register() http.Handler {
	users := handler.NewUser(r.users, r.logger)
	sensors := handler.NewSensor(r.sensors, r.logger)
	exercises := handler.NewExercise(r.exercises, r.logger)
	falls := handler.NewFall(r.falls, r.logger)
	alerts := handler.NewAlert(r.alerts, r.logger)
	stats := handler.NewStats(r.stats, r.logger)
	export := handler.NewExport(r.export, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", users.Create)
	mux.HandleFunc("GET /api/users/{id}", users.Get)

	mux.HandleFunc("GET /api/sensor/latest/{userId}", sensors.GetLatest)
	mux.HandleFunc("GET /api/sensor/{userId}", sensors.GetHistory)
	mux.HandleFunc("POST /api/sensor", sensors.Create)

	mux.HandleFunc("GET /api/exercises", exercises.GetCatalog)
	mux.HandleFunc("GET /api/exercise-sessions/{userId}", exercises.GetSessions)
	mux.HandleFunc("POST /api/exercise-sessions", exercises.CreateSession)
	mux.HandleFunc("PATCH /api/exercise-sessions/{id}", exercises.UpdateSession)

	mux.HandleFunc("GET /api/falls/{userId}", falls.GetHistory)
	mux.HandleFunc("POST /api/falls", falls.Create)
	mux.HandleFunc("PATCH /api/falls/{id}", falls.Update)

	mux.HandleFunc("GET /api/alerts/{userId}", alerts.GetHistory)
	mux.HandleFunc("POST /api/alerts", alerts.Create)
	mux.HandleFunc("PATCH /api/alerts/{id}/read", alerts.MarkRead)

	mux.HandleFunc("GET /api/stats/{userId}", stats.GetHistory)
	mux.HandleFunc("POST /api/stats", stats.Create)

	mux.HandleFunc("GET /api/export/{userId}", export.Download)

	logging := middleware.NewLogging(r.logger)
	return logging.Handle(mux)
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DrGenie/LonelyLess-AU/internal/config"
	"github.com/DrGenie/LonelyLess-AU/internal/engine"
	"github.com/DrGenie/LonelyLess-AU/internal/hermes"
	"github.com/DrGenie/LonelyLess-AU/internal/store"
)

// NewRouter wires the decision engine API. archive, events and m may be nil.
func NewRouter(e *engine.Engine, sessions *store.Sessions, archive store.Archive, events *hermes.Publisher, m *Metrics, cfg config.ServerConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	if cfg.RequestsPerMinute > 0 {
		r.Use(RateLimitMiddleware(cfg.RequestsPerMinute))
	}

	scenarios := NewScenariosHandler(e, events, m)
	calibration := NewCalibrationHandler(e)
	sessionsHandler := NewSessionsHandler(sessions, archive, scenarios, events, m, logger)
	admin := NewAdminHandler(sessions, archive, e)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scenarios/validate", scenarios.Validate)
		r.Post("/scenarios/probability", scenarios.Probability)
		r.Post("/scenarios/evaluate", scenarios.Evaluate)

		r.Get("/calibration", calibration.Get)
		r.Get("/calibration/wtp", calibration.WTP)

		r.Post("/sessions", sessionsHandler.Create)
		r.Delete("/sessions/{id}", sessionsHandler.End)
		r.Post("/sessions/{id}/scenarios", sessionsHandler.SaveScenario)
		r.Get("/sessions/{id}/scenarios", sessionsHandler.ListScenarios)
		r.Get("/sessions/{id}/comparison", sessionsHandler.Comparison)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminToken))
			r.Get("/stats", admin.Stats)
			r.Get("/archive/{session_id}", admin.Archived)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

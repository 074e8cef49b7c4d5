package routes

import (
	"net/http"
	"time"

	"elite-hub/treinador/internal/api"
	"elite-hub/treinador/internal/auth"
	"elite-hub/treinador/internal/db"
	"elite-hub/treinador/internal/logging"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	handlers := api.NewHandlers(deps)

	// The login boundary sits outside /api/v1 and keeps its own rate limit.
	r.With(middleware.RateLimitMiddleware).Post("/login", handlers.Login())

	adminSecret := auth.Secret()
	if len(adminSecret) == 0 {
		logging.Warn("ADMIN_JWT_SECRET is not set; admin endpoints will reject every request")
	}

	RegisterAPIRoutes(r, handlers, adminSecret)

	return r
}

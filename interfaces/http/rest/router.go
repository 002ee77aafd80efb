// Package rest wires the HTTP router for the dashboard API.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"seograph-backend/interfaces/http/rest/handlers"
	"seograph-backend/interfaces/http/rest/middleware"
	"seograph-backend/internal/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	service  handlers.ClusterService
	explorer handlers.Explorer
	logger   *zap.Logger
	metrics  *observability.Collector
	origins  []string
}

// NewRouter creates a new router instance
func NewRouter(
	service handlers.ClusterService,
	explorer handlers.Explorer,
	logger *zap.Logger,
	metrics *observability.Collector,
	origins []string,
) *Router {
	return &Router{
		service:  service,
		explorer: explorer,
		logger:   logger,
		metrics:  metrics,
		origins:  origins,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health and observability endpoints
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Fail fast when the analytical store is down
		r.Use(middleware.CircuitBreaker(
			middleware.DefaultCircuitBreakerConfig("api-routes"), rt.logger))

		clusterHandler := handlers.NewClusterHandler(rt.service, rt.explorer, rt.logger)
		r.Route("/clusters", func(r chi.Router) {
			r.Get("/", clusterHandler.ListClusters)
			r.Get("/{clusterID}/expand", clusterHandler.Expand)
			r.Get("/{clusterID}/stats", clusterHandler.Stats)
			r.Get("/{clusterID}/opportunities", clusterHandler.Opportunities)
			r.Get("/{clusterID}/gaps", clusterHandler.Gaps)
			r.Get("/{clusterID}/competitors", clusterHandler.Competitors)
		})

		strategyHandler := handlers.NewStrategyHandler(rt.explorer, rt.logger)
		r.Post("/strategy", strategyHandler.AddToStrategy)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

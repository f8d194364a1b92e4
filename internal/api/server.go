// Package api provides the HTTP server for the slicing-pie backend.
// It exposes a JSON REST API over the founder, category, ledger, and
// equity services.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vritti-hub/slicingpie/internal/auth"
	"github.com/vritti-hub/slicingpie/internal/middleware"
	"github.com/vritti-hub/slicingpie/internal/service"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// Server is the slicing-pie HTTP API server.
type Server struct {
	founders   *service.FounderService
	categories *service.CategoryService
	ledger     *service.LedgerService
	equity     *service.EquityService
	auth       *service.AuthService
	jwtManager *auth.JWTManager

	metricsEnabled bool
}

// NewServer creates a new API server over the given services.
func NewServer(
	founders *service.FounderService,
	categories *service.CategoryService,
	ledger *service.LedgerService,
	equity *service.EquityService,
	authService *service.AuthService,
	jwtManager *auth.JWTManager,
) *Server {
	return &Server{
		founders:   founders,
		categories: categories,
		ledger:     ledger,
		equity:     equity,
		auth:       authService,
		jwtManager: jwtManager,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestLogger)
	r.Use(corsMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Everything below requires an authenticated user. Founder and
		// category mutations additionally need the configuration
		// capability, checked in the service layer.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.jwtManager))

			r.Get("/founders", s.handleListFounders)
			r.Post("/founders", s.handleCreateFounder)
			r.Patch("/founders/{id}", s.handleUpdateFounder)
			r.Delete("/founders/{id}", s.handleDeleteFounder)

			r.Get("/categories", s.handleListCategories)
			r.Patch("/categories/{id}", s.handleUpdateCategory)

			r.Get("/entries", s.handleListEntries)
			r.Post("/entries", s.handleCreateEntry)
			r.Delete("/entries/{id}", s.handleDeleteEntry)

			r.Get("/equity", s.handleEquitySummary)
			r.Post("/forecast", s.handleForecast)
		})
	})

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, errType, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    errType,
		},
	})
}

// writeServiceError maps service and storage errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "permission_denied", err.Error())
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

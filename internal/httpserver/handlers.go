// Package httpserver exposes the assistant's three actions as a JSON API.
// All failures are recovered here: the user always gets a well-formed JSON
// body, never a blank response or a propagated stack trace.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"health-companion/internal/core"
	"health-companion/internal/llm"
	"health-companion/internal/logging"
	"health-companion/internal/metrics"
	"health-companion/pkg"
)

var serverStartTime = time.Now()

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Assistant *core.Assistant
	limiter   *rateLimiter
}

// NewServer constructs a Server around the given assistant and starts its
// rate-limiter maintenance. Call Close when the server is discarded.
func NewServer(assistant *core.Assistant) *Server {
	limiter := newRateLimiter()
	limiter.startCleanup(30 * time.Minute)
	return &Server{Assistant: assistant, limiter: limiter}
}

// Close stops the server's background maintenance.
func (s *Server) Close() {
	s.limiter.Stop()
}

// Router builds the chi router with the full middleware chain and all
// routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RedirectSlashes)
	r.Use(requestIDMiddleware)
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(s.rateLimitMiddleware)
	r.Use(metrics.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/symptoms", s.handleSymptoms)
		r.Post("/medicine", s.handleMedicine)
		r.Get("/emergency/{city}", s.handleEmergency)
	})
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// respondWithJSON writes a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// isValidationErr reports whether err is one of the assistant's input
// validation errors, all of which map to 400.
func isValidationErr(err error) bool {
	return errors.Is(err, core.ErrInvalidAge) ||
		errors.Is(err, core.ErrInvalidGender) ||
		errors.Is(err, core.ErrEmptySymptoms) ||
		errors.Is(err, core.ErrEmptyDrugName)
}

// respondAssistantError maps assistant failures to user-visible responses.
// A missing credential yields the instructional message; any completion
// failure yields a generic unavailable message. Internal error strings are
// logged, never returned to the client.
func respondAssistantError(w http.ResponseWriter, err error) {
	switch {
	case isValidationErr(err):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, llm.ErrMissingAPIKey):
		respondWithError(w, http.StatusServiceUnavailable, core.MissingKeyMessage)
	default:
		logging.Error("completion call failed", "error", err)
		respondWithError(w, http.StatusBadGateway, core.UnavailableMessage)
	}
}

func (s *Server) handleSymptoms(w http.ResponseWriter, r *http.Request) {
	var req pkg.SymptomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := s.Assistant.AnalyzeSymptoms(r.Context(), req.Age, req.Gender, req.Symptoms)
	if err != nil {
		respondAssistantError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, answer)
}

func (s *Server) handleMedicine(w http.ResponseWriter, r *http.Request) {
	var req pkg.MedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := s.Assistant.MedicineDetails(r.Context(), req.Name)
	if err != nil {
		respondAssistantError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, answer)
}

func (s *Server) handleEmergency(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "missing city name")
		return
	}

	respondWithJSON(w, http.StatusOK, core.EmergencyLinks(city))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": time.Since(serverStartTime).Seconds(),
	})
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/observability"
	"github.com/skybrief/metar-speech/internal/speech"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// BriefingStore serves archived briefings. A nil store disables the
// briefings endpoint.
type BriefingStore interface {
	Latest(ctx context.Context, station string) (domain.Briefing, error)
}

// ErrNotFound is returned by a BriefingStore when a station has no archived
// briefing.
var ErrNotFound = domain.ErrNoBriefing

// Server exposes health, readiness, metrics, and briefing HTTP endpoints.
type Server struct {
	httpServer *http.Server
	store      BriefingStore
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /speak, and /briefings routes.
func NewServer(addr string, ready ReadinessChecker, store BriefingStore, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:   store,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /speak", s.handleSpeak)
	mux.HandleFunc("GET /briefings/{station}", s.handleBriefing)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleSpeak renders an ad-hoc decoded report from the request body.
// Malformed JSON is the only rejection; missing or garbled field tokens
// degrade to a partial sentence, matching the rendering contract.
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var rep domain.Report
	if err := json.NewDecoder(r.Body).Decode(&rep); err != nil {
		s.metrics.SpeakRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid report payload"})
		return
	}

	s.metrics.SpeakRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, map[string]string{
		"station": rep.Station,
		"speech":  speech.Render(rep.Data, rep.Units),
	})
}

func (s *Server) handleBriefing(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "briefing archive is disabled"})
		return
	}

	station := r.PathValue("station")
	briefing, err := s.store.Latest(r.Context(), station)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no briefing for station " + station})
		return
	}
	if err != nil {
		s.logger.Error("briefing lookup failed", "station", station, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "briefing lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, briefing)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}

// Package server provides the HTTP surface of the analysis service: the
// sessions API, the progress stream, health, and metrics.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/playsight/internal/app"
	"github.com/ayusman/playsight/internal/metrics"
	"github.com/ayusman/playsight/internal/server/api"
	"github.com/ayusman/playsight/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
	Metrics   *metrics.Metrics
}

// Server represents the HTTP server for the analysis service.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register the sessions API if Store and App are configured
	if s.config.Store != nil && s.config.App != nil {
		sessionHandler := api.NewSessionHandler(s.config.Store, s.config.App)

		// Route both collection and item paths (including /report suffixes)
		// through the one handler
		sessionRouter := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionHandler.ServeHTTP(w, r)
		})
		s.mux.Handle("/api/sessions", sessionRouter)
		s.mux.Handle("/api/sessions/", sessionRouter)
	}

	// Register the progress websocket if App is configured
	if s.config.App != nil {
		progressHandler := NewProgressHandler()
		s.config.App.OnProgress(progressHandler.Broadcast)
		s.mux.Handle("/api/progress", progressHandler)
	}

	// Expose Prometheus metrics if configured
	if s.config.Metrics != nil {
		s.mux.Handle("/metrics", s.config.Metrics.Handler())
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return http.ListenAndServe(addr, s)
}

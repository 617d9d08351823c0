// Package api provides HTTP API handlers for the analysis service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/store"
)

// Analyzer runs the analysis pipeline for a session.
type Analyzer interface {
	StartSession(ctx context.Context, videoURI string) (*store.Session, error)
	AnalyzeResults(ctx context.Context, videoURI string, results *annotation.Results) (*store.Session, error)
}

// SessionHandler handles HTTP requests for session resources.
type SessionHandler struct {
	store    *store.Store
	analyzer Analyzer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s *store.Store, a Analyzer) *SessionHandler {
	return &SessionHandler{store: s, analyzer: a}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/sessions, /api/sessions/{id}, /api/sessions/{id}/report
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/sessions
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoints: /api/sessions/{id} and /api/sessions/{id}/report
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if rest, ok := strings.CutSuffix(path, "/report"); ok {
		h.report(w, r, rest)
		return
	}
	h.get(w, r, path)
}

// Request and response types

type createSessionRequest struct {
	VideoURI    string              `json:"video_uri"`
	Annotations *annotation.Results `json:"annotations,omitempty"`
}

type sessionResponse struct {
	ID           string `json:"id"`
	VideoURI     string `json:"video_uri"`
	Status       string `json:"status"`
	OverallScore int    `json:"overall_score"`
	Grade        string `json:"grade"`
	Error        string `json:"error,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func toSessionResponse(s *store.Session) sessionResponse {
	return sessionResponse{
		ID:           s.ID,
		VideoURI:     s.VideoURI,
		Status:       string(s.Status),
		OverallScore: s.OverallScore,
		Grade:        s.Grade,
		Error:        s.Error,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// create handles POST /api/sessions: it runs the full pipeline over either
// inline annotations or the configured annotation provider.
func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.VideoURI == "" {
		http.Error(w, "video_uri is required", http.StatusBadRequest)
		return
	}

	var (
		session *store.Session
		err     error
	)
	if req.Annotations != nil {
		session, err = h.analyzer.AnalyzeResults(r.Context(), req.VideoURI, req.Annotations)
	} else {
		session, err = h.analyzer.StartSession(r.Context(), req.VideoURI)
	}
	if err != nil {
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// list handles GET /api/sessions.
func (h *SessionHandler) list(w http.ResponseWriter, _ *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// get handles GET /api/sessions/{id}.
func (h *SessionHandler) get(w http.ResponseWriter, _ *http.Request, id string) {
	session, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// report handles GET /api/sessions/{id}/report.
func (h *SessionHandler) report(w http.ResponseWriter, _ *http.Request, id string) {
	rec, err := h.store.Reports().Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rec.Report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

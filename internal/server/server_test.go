package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/app"
	"github.com/ayusman/playsight/internal/metrics"
	"github.com/ayusman/playsight/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	m := metrics.New()
	a := app.New(app.Config{Store: s, Provider: annotation.NewFixtureProvider(), Metrics: m})
	return New(Config{Store: s, App: a, Metrics: m})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %v", body["status"])
	}

	req = httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for POST, got %d", w.Code)
	}
}

func TestCreateSession(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"video_uri": "file:///play.mp4"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var session struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		OverallScore int    `json:"overall_score"`
		Grade        string `json:"grade"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if session.ID == "" {
		t.Error("expected a session ID")
	}
	if session.Status != string(store.StatusCompleted) {
		t.Errorf("expected completed session, got %q", session.Status)
	}
	if session.OverallScore <= 0 {
		t.Errorf("expected a positive score, got %d", session.OverallScore)
	}

	// The composed report is retrievable afterwards.
	req = httptest.NewRequest(http.MethodGet, "/api/sessions/"+session.ID+"/report", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for report, got %d", w.Code)
	}
	var rep struct {
		Summary struct {
			OverallScore int    `json:"overall_score"`
			Grade        string `json:"grade"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if rep.Summary.OverallScore != session.OverallScore {
		t.Errorf("report score %d does not match session score %d",
			rep.Summary.OverallScore, session.OverallScore)
	}
}

func TestCreateSession_InlineAnnotations(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{
		"video_uri": "upload://inline",
		"annotations": {
			"person_detections": [
				{"tracks": [{"confidence": 0.9, "objects": [
					{"box": {"left": 0.2, "top": 0.1, "right": 0.6, "bottom": 0.8}, "time_offset": 5}
				]}]},
				{"tracks": [{"confidence": 0.9, "objects": [
					{"box": {"left": 0.43, "top": 0.35, "right": 0.53, "bottom": 0.55}, "time_offset": 5}
				]}]}
			]
		}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", body)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var session struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if session.Status != string(store.StatusCompleted) {
		t.Errorf("expected completed session, got %q", session.Status)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	srv := newTestServer(t)

	for name, body := range map[string]string{
		"missing video_uri": `{}`,
		"invalid JSON":      `{`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
		}
	}
}

func TestListSessions(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var sessions []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty list, got %d entries", len(sessions))
	}

	create := httptest.NewRequest(http.MethodPost, "/api/sessions",
		strings.NewReader(`{"video_uri": "file:///a.mp4"}`))
	srv.ServeHTTP(httptest.NewRecorder(), create)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 session after create, got %d", len(sessions))
	}
}

func TestGetSession_NotFound(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/sessions/missing", "/api/sessions/missing/report"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestSessionMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/some-id", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	create := httptest.NewRequest(http.MethodPost, "/api/sessions",
		strings.NewReader(`{"video_uri": "file:///a.mp4"}`))
	srv.ServeHTTP(httptest.NewRecorder(), create)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "playsight_sessions_analyzed_total 1") {
		t.Errorf("expected the analyzed counter at 1, got:\n%s", body)
	}
	if !strings.Contains(body, "playsight_last_overall_score") {
		t.Error("expected the last-score gauge to be exported")
	}
}

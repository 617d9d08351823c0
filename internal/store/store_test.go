package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	sessions := s.Sessions()

	session := &Session{ID: "s1", VideoURI: "gs://bucket/play.mp4"}
	if err := sessions.Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if session.Status != StatusPending {
		t.Errorf("expected pending status, got %q", session.Status)
	}

	got, err := sessions.GetByID("s1")
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got.VideoURI != "gs://bucket/play.mp4" || got.Status != StatusPending {
		t.Errorf("unexpected session: %+v", got)
	}

	if err := sessions.UpdateStatus("s1", StatusProcessing, ""); err != nil {
		t.Fatalf("failed to update status: %v", err)
	}
	if err := sessions.SetResult("s1", 82, "B"); err != nil {
		t.Fatalf("failed to set result: %v", err)
	}

	got, err = sessions.GetByID("s1")
	if err != nil {
		t.Fatalf("failed to re-get session: %v", err)
	}
	if got.Status != StatusCompleted || got.OverallScore != 82 || got.Grade != "B" {
		t.Errorf("unexpected completed session: %+v", got)
	}
}

func TestSessionNotFound(t *testing.T) {
	s := newTestStore(t)
	sessions := s.Sessions()

	if _, err := sessions.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := sessions.UpdateStatus("missing", StatusFailed, "boom"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on update, got %v", err)
	}
	if err := sessions.SetResult("missing", 50, "F"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on set result, got %v", err)
	}
}

func TestSessionList(t *testing.T) {
	s := newTestStore(t)
	sessions := s.Sessions()

	for _, id := range []string{"a", "b", "c"} {
		if err := sessions.Create(&Session{ID: id, VideoURI: "file:///" + id}); err != nil {
			t.Fatalf("failed to create session %q: %v", id, err)
		}
	}

	list, err := sessions.List()
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("expected 3 sessions, got %d", len(list))
	}
}

func TestFailedStatusKeepsError(t *testing.T) {
	s := newTestStore(t)
	sessions := s.Sessions()

	if err := sessions.Create(&Session{ID: "s1", VideoURI: "x"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := sessions.UpdateStatus("s1", StatusFailed, "annotation backend unavailable"); err != nil {
		t.Fatalf("failed to mark failed: %v", err)
	}

	got, err := sessions.GetByID("s1")
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got.Status != StatusFailed || got.Error != "annotation backend unavailable" {
		t.Errorf("unexpected failed session: %+v", got)
	}
}

func TestReportSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	if err := s.Sessions().Create(&Session{ID: "s1", VideoURI: "x"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	reports := s.Reports()

	type doc struct {
		Headline string `json:"headline"`
	}
	if err := reports.Save("s1", 75, "C+", doc{Headline: "first"}); err != nil {
		t.Fatalf("failed to save report: %v", err)
	}
	// Saving again replaces the previous report.
	if err := reports.Save("s1", 80, "B", doc{Headline: "second"}); err != nil {
		t.Fatalf("failed to re-save report: %v", err)
	}

	rec, err := reports.Get("s1")
	if err != nil {
		t.Fatalf("failed to get report: %v", err)
	}
	if rec.OverallScore != 80 || rec.Grade != "B" {
		t.Errorf("unexpected report record: %+v", rec)
	}
	var d doc
	if err := json.Unmarshal(rec.Report, &d); err != nil {
		t.Fatalf("report payload is not valid JSON: %v", err)
	}
	if d.Headline != "second" {
		t.Errorf("expected replaced report, got %q", d.Headline)
	}

	if _, err := reports.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalysisPayloads(t *testing.T) {
	s := newTestStore(t)
	if err := s.Sessions().Create(&Session{ID: "s1", VideoURI: "x"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	reports := s.Reports()

	payload := map[string]any{"score": 42}
	for _, kind := range []string{KindGestures, KindDetailed, KindEvaluation} {
		if err := reports.SaveAnalysis("s1", kind, payload); err != nil {
			t.Fatalf("failed to save %s analysis: %v", kind, err)
		}
	}

	raw, err := reports.GetAnalysis("s1", KindDetailed)
	if err != nil {
		t.Fatalf("failed to get analysis: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("analysis payload is not valid JSON: %v", err)
	}
	if got["score"] != float64(42) {
		t.Errorf("unexpected payload: %v", got)
	}

	// Upsert replaces the payload for the same kind.
	if err := reports.SaveAnalysis("s1", KindDetailed, map[string]any{"score": 50}); err != nil {
		t.Fatalf("failed to upsert analysis: %v", err)
	}
	raw, err = reports.GetAnalysis("s1", KindDetailed)
	if err != nil {
		t.Fatalf("failed to re-get analysis: %v", err)
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("upserted payload is not valid JSON: %v", err)
	}
	if got["score"] != float64(50) {
		t.Errorf("expected upserted payload, got %v", got)
	}

	if _, err := reports.GetAnalysis("s1", "unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown kind, got %v", err)
	}
}

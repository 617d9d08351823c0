package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// Analysis payload kinds persisted per session.
const (
	KindGestures   = "gestures"
	KindDetailed   = "detailed"
	KindEvaluation = "evaluation"
)

// ReportRecord is a persisted comprehensive report.
type ReportRecord struct {
	SessionID    string
	OverallScore int
	Grade        string
	Report       json.RawMessage
	CreatedAt    time.Time
}

// ReportRepository stores composed reports and intermediate analysis payloads
// as JSON documents.
type ReportRepository struct {
	db *sql.DB
}

// Reports returns the report repository for this store.
func (s *Store) Reports() *ReportRepository {
	return &ReportRepository{db: s.db}
}

// Save persists a composed report for a session, replacing any previous one.
func (r *ReportRepository) Save(sessionID string, overallScore int, grade string, report any) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO reports (session_id, overall_score, grade, report, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		 overall_score = excluded.overall_score,
		 grade = excluded.grade,
		 report = excluded.report`,
		sessionID, overallScore, grade, string(payload), time.Now(),
	)
	return err
}

// Get retrieves the report for a session.
func (r *ReportRepository) Get(sessionID string) (*ReportRecord, error) {
	rec := &ReportRecord{}
	var report string

	err := r.db.QueryRow(
		`SELECT session_id, overall_score, grade, report, created_at
		 FROM reports WHERE session_id = ?`,
		sessionID,
	).Scan(&rec.SessionID, &rec.OverallScore, &rec.Grade, &report, &rec.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec.Report = json.RawMessage(report)
	return rec, nil
}

// SaveAnalysis persists one intermediate analysis payload for a session.
func (r *ReportRepository) SaveAnalysis(sessionID, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO analyses (session_id, kind, payload, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id, kind) DO UPDATE SET payload = excluded.payload`,
		sessionID, kind, string(data), time.Now(),
	)
	return err
}

// GetAnalysis retrieves one intermediate analysis payload.
func (r *ReportRepository) GetAnalysis(sessionID, kind string) (json.RawMessage, error) {
	var payload string
	err := r.db.QueryRow(
		`SELECT payload FROM analyses WHERE session_id = ? AND kind = ?`,
		sessionID, kind,
	).Scan(&payload)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(payload), nil
}

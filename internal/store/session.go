package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// SessionStatus tracks a session through the pipeline.
type SessionStatus string

const (
	StatusPending    SessionStatus = "pending"
	StatusProcessing SessionStatus = "processing"
	StatusCompleted  SessionStatus = "completed"
	StatusFailed     SessionStatus = "failed"
)

// Session represents one analyzed play video.
type Session struct {
	ID           string
	VideoURI     string
	Status       SessionStatus
	OverallScore int
	Grade        string
	Error        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new session into the database.
func (r *SessionRepository) Create(s *Session) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = StatusPending
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, video_uri, status, overall_score, grade, error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.VideoURI, string(s.Status), s.OverallScore, s.Grade, s.Error, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	s := &Session{}
	var status string

	err := r.db.QueryRow(
		`SELECT id, video_uri, status, overall_score, grade, error, created_at, updated_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.VideoURI, &status, &s.OverallScore, &s.Grade, &s.Error, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.Status = SessionStatus(status)
	return s, nil
}

// List retrieves all sessions, newest first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, video_uri, status, overall_score, grade, error, created_at, updated_at
		 FROM sessions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s := &Session{}
		var status string
		if err := rows.Scan(&s.ID, &s.VideoURI, &status, &s.OverallScore, &s.Grade, &s.Error, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Status = SessionStatus(status)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// UpdateStatus transitions a session's status, recording an error message for
// failed sessions.
func (r *SessionRepository) UpdateStatus(id string, status SessionStatus, errMsg string) error {
	res, err := r.db.Exec(
		`UPDATE sessions SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		string(status), errMsg, time.Now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetResult records the headline result on a completed session.
func (r *SessionRepository) SetResult(id string, overallScore int, grade string) error {
	res, err := r.db.Exec(
		`UPDATE sessions SET overall_score = ?, grade = ?, status = ?, updated_at = ? WHERE id = ?`,
		overallScore, grade, string(StatusCompleted), time.Now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

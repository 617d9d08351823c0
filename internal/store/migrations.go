package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per analyzed video
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			video_uri TEXT NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('pending', 'processing', 'completed', 'failed')),
			overall_score INTEGER NOT NULL DEFAULT 0,
			grade TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Reports table - the composed comprehensive report, stored as JSON
		`CREATE TABLE IF NOT EXISTS reports (
			session_id TEXT PRIMARY KEY REFERENCES sessions(id) ON DELETE CASCADE,
			overall_score INTEGER NOT NULL,
			grade TEXT NOT NULL,
			report TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Analyses table - intermediate analysis payloads per session, one row
		// per kind (gestures, detailed, evaluation)
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(session_id, kind)
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_session_id ON analyses(session_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

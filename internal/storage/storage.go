// Package storage keeps the sqlite ledger of discovered profiles and sent
// requests. The collector uses it to skip profiles handled in earlier runs;
// the orchestrator appends one row per attempt for the audit trail.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the outreach ledger database.
type DB struct {
	conn *sql.DB
}

// Attempt is one recorded connection attempt.
type Attempt struct {
	ID         int64
	ProfileURL string
	Outcome    string
	Reason     string
	At         time.Time
}

// Open opens (or creates) the ledger at the given path.
func Open(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

func (db *DB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_url TEXT NOT NULL,
		outcome TEXT NOT NULL,
		reason TEXT,
		attempted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_profile ON attempts(profile_url);
	CREATE INDEX IF NOT EXISTS idx_attempts_at ON attempts(attempted_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordAttempt appends one attempt row.
func (db *DB) RecordAttempt(profileURL, outcome, reason string) error {
	query := `
		INSERT INTO attempts (profile_url, outcome, reason)
		VALUES (?, ?, ?)
	`

	_, err := db.conn.Exec(query, profileURL, outcome, reason)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	return nil
}

// ProfileProcessed reports whether the profile already has a recorded
// attempt from any earlier run.
func (db *DB) ProfileProcessed(profileURL string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM attempts WHERE profile_url = ?"
	err := db.conn.QueryRow(query, profileURL).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check attempt history: %w", err)
	}

	return count > 0, nil
}

// SentToday returns the number of requests recorded as sent today.
func (db *DB) SentToday() (int, error) {
	query := `
		SELECT COUNT(*) FROM attempts
		WHERE outcome = 'connected' AND DATE(attempted_at) = DATE('now')
	`

	var count int
	err := db.conn.QueryRow(query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get today's sent count: %w", err)
	}

	return count, nil
}

// Stats returns ledger totals for the startup log line.
func (db *DB) Stats() (map[string]int, error) {
	stats := make(map[string]int)

	queries := map[string]string{
		"total_attempts": "SELECT COUNT(*) FROM attempts",
		"total_sent":     "SELECT COUNT(*) FROM attempts WHERE outcome = 'connected'",
	}

	for key, query := range queries {
		var count int
		if err := db.conn.QueryRow(query).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		stats[key] = count
	}

	sentToday, err := db.SentToday()
	if err != nil {
		return nil, err
	}
	stats["sent_today"] = sentToday

	return stats, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists review progress across workbench sessions.
//
// State is keyed by source file and sample ID in a SQLite database, so
// reopening the same CSV resumes exactly where the operator left off.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/corrbench/internal/sample"
)

// ErrNoSession is returned when a source file has no stored session.
var ErrNoSession = errors.New("no stored session for this source")

const schema = `
CREATE TABLE IF NOT EXISTS review_state (
	source             TEXT NOT NULL,
	sample_id          TEXT NOT NULL,
	status             TEXT NOT NULL,
	edited_instruction TEXT NOT NULL DEFAULT '',
	edited_output      TEXT NOT NULL DEFAULT '',
	final_instruction  TEXT NOT NULL DEFAULT '',
	final_output       TEXT NOT NULL DEFAULT '',
	updated_at         TEXT NOT NULL,
	PRIMARY KEY (source, sample_id)
);

CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	last_index INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_source ON sessions(source, updated_at);
`

// =============================================================================
// STORE
// =============================================================================

// Store is a SQLite-backed review progress store.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Open opens (creating if needed) the progress database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{
		db:        db,
		sessionID: uuid.NewString(),
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionID identifies this review session in the sessions table.
func (s *Store) SessionID() string {
	return s.sessionID
}

// =============================================================================
// SAMPLE STATE
// =============================================================================

// SaveSample upserts the review state of one sample.
func (s *Store) SaveSample(source string, smp *sample.Sample) error {
	_, err := s.db.Exec(`
		INSERT INTO review_state
			(source, sample_id, status, edited_instruction, edited_output,
			 final_instruction, final_output, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source, sample_id) DO UPDATE SET
			status             = excluded.status,
			edited_instruction = excluded.edited_instruction,
			edited_output      = excluded.edited_output,
			final_instruction  = excluded.final_instruction,
			final_output       = excluded.final_output,
			updated_at         = excluded.updated_at`,
		source, smp.ID, smp.Status.String(),
		smp.EditedInstruction, smp.EditedOutput,
		smp.FinalInstruction, smp.FinalOutput,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save sample %s: %w", smp.ID, err)
	}
	return nil
}

// LoadInto applies persisted state onto a freshly loaded sample.
// Returns false when the sample has no stored state.
func (s *Store) LoadInto(source string, smp *sample.Sample) (bool, error) {
	var status string
	err := s.db.QueryRow(`
		SELECT status, edited_instruction, edited_output,
		       final_instruction, final_output
		FROM review_state WHERE source = ? AND sample_id = ?`,
		source, smp.ID,
	).Scan(&status, &smp.EditedInstruction, &smp.EditedOutput,
		&smp.FinalInstruction, &smp.FinalOutput)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load sample %s: %w", smp.ID, err)
	}

	st, err := sample.ParseStatus(status)
	if err != nil {
		return false, err
	}
	smp.Status = st
	return true, nil
}

// CountByStatus returns how many stored samples of source hold each
// status.
func (s *Store) CountByStatus(source string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT status, COUNT(*) FROM review_state WHERE source = ? GROUP BY status`,
		source,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// =============================================================================
// SESSIONS
// =============================================================================

// SaveSession records the operator's current position in source.
func (s *Store) SaveSession(source string, lastIndex int) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, source, last_index, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_index = excluded.last_index,
			updated_at = excluded.updated_at`,
		s.sessionID, source, lastIndex,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LastSession returns the most recently saved position for source.
func (s *Store) LastSession(source string) (int, error) {
	var lastIndex int
	err := s.db.QueryRow(`
		SELECT last_index FROM sessions
		WHERE source = ? ORDER BY updated_at DESC LIMIT 1`,
		source,
	).Scan(&lastIndex)
	if err == sql.ErrNoRows {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load session: %w", err)
	}
	return lastIndex, nil
}

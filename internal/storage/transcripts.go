// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists chat transcripts to a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/morganforge/wardbot/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrDatabaseError      = errors.New("database error")
)

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	staff_id   TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id            TEXT PRIMARY KEY,
	transcript_id TEXT NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
	seq           INTEGER NOT NULL,
	sender        TEXT NOT NULL,
	text          TEXT NOT NULL,
	created_at    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_transcript ON messages(transcript_id, seq);
CREATE INDEX IF NOT EXISTS idx_transcripts_updated ON transcripts(updated_at);
`

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore persists conversations to SQLite. Safe for concurrent use;
// the single connection serializes writers.
type TranscriptStore struct {
	db *sql.DB
	mu sync.Mutex

	// maxTranscripts caps stored transcripts, oldest deleted first.
	// 0 disables the limit.
	maxTranscripts int
}

// NewTranscriptStore opens (and if needed creates) the transcript database.
func NewTranscriptStore(path string, maxTranscripts int) (*TranscriptStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &TranscriptStore{
		db:             db,
		maxTranscripts: maxTranscripts,
	}, nil
}

// Close closes the underlying database.
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// SAVE
// =============================================================================

// Save persists a conversation, replacing any previous version with the
// same ID, then enforces the transcript limit.
func (s *TranscriptStore) Save(ctx context.Context, conv *model.Conversation) error {
	if conv == nil {
		return errors.New("conversation cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transcripts (id, title, staff_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			staff_id = excluded.staff_id,
			updated_at = excluded.updated_at`,
		conv.ID, conv.GetTitle(), conv.StaffID,
		conv.CreatedAt.Unix(), conv.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}

	// Replace the message rows wholesale; the log is append-only so a full
	// rewrite is simpler than diffing and still cheap at this scale.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE transcript_id = ?`, conv.ID); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO messages (id, transcript_id, seq, sender, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer stmt.Close()

	for i, msg := range conv.Messages {
		if _, err := stmt.ExecContext(ctx,
			msg.ID, conv.ID, i, msg.Sender.String(), msg.Text,
			msg.Timestamp.Unix()); err != nil {
			return fmt.Errorf("failed to save message %d: %w", i, err)
		}
	}

	if err := s.enforceLimit(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

// enforceLimit deletes the oldest transcripts beyond the cap.
func (s *TranscriptStore) enforceLimit(ctx context.Context, tx *sql.Tx) error {
	if s.maxTranscripts <= 0 {
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		DELETE FROM transcripts WHERE id IN (
			SELECT id FROM transcripts
			ORDER BY updated_at DESC, id
			LIMIT -1 OFFSET ?
		)`, s.maxTranscripts)
	if err != nil {
		return fmt.Errorf("failed to enforce transcript limit: %w", err)
	}
	return nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load retrieves a conversation by ID.
func (s *TranscriptStore) Load(ctx context.Context, id string) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := &model.Conversation{ID: id}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, `
		SELECT title, staff_id, created_at, updated_at
		FROM transcripts WHERE id = ?`, id).
		Scan(&conv.Title, &conv.StaffID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTranscriptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	conv.CreatedAt = time.Unix(createdAt, 0)
	conv.UpdatedAt = time.Unix(updatedAt, 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender, text, created_at
		FROM messages WHERE transcript_id = ?
		ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var msg model.Message
		var sender string
		var ts int64
		if err := rows.Scan(&msg.ID, &sender, &msg.Text, &ts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		msg.Sender = model.Sender(sender)
		msg.Timestamp = time.Unix(ts, 0)
		conv.Messages = append(conv.Messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return conv, nil
}

// =============================================================================
// LIST / DELETE
// =============================================================================

// List returns metadata for all stored transcripts, newest first.
func (s *TranscriptStore) List(ctx context.Context) ([]model.ConversationMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.title, t.staff_id, t.created_at, t.updated_at,
			(SELECT COUNT(*) FROM messages m WHERE m.transcript_id = t.id),
			COALESCE((SELECT m.text FROM messages m
				WHERE m.transcript_id = t.id AND m.sender = 'user'
				ORDER BY m.seq DESC LIMIT 1), '')
		FROM transcripts t
		ORDER BY t.updated_at DESC, t.id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var metas []model.ConversationMeta
	for rows.Next() {
		var meta model.ConversationMeta
		var createdAt, updatedAt int64
		var preview string
		if err := rows.Scan(&meta.ID, &meta.Title, &meta.StaffID,
			&createdAt, &updatedAt, &meta.MessageCount, &preview); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		meta.CreatedAt = time.Unix(createdAt, 0)
		meta.UpdatedAt = time.Unix(updatedAt, 0)
		meta.Preview = preview
		metas = append(metas, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return metas, nil
}

// Delete removes a transcript and its messages.
func (s *TranscriptStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM transcripts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if affected == 0 {
		return ErrTranscriptNotFound
	}
	return nil
}

// Count returns the number of stored transcripts.
func (s *TranscriptStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transcripts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return count, nil
}

// Package audit keeps a trail of every write the console sends upstream.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// Entry is one recorded write.
type Entry struct {
	ID        int64     `json:"id"`
	RequestID string    `json:"requestId"`
	ActorID   int64     `json:"actorId"`
	Resource  string    `json:"resource"`
	EntityID  string    `json:"entityId"`
	Action    string    `json:"action"`
	OK        bool      `json:"ok"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Recorder stores and lists entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func (NoopRecorder) Record(context.Context, Entry) error { return nil }

func (NoopRecorder) Recent(context.Context, int) ([]Entry, error) { return []Entry{}, nil }

const schema = `
CREATE TABLE IF NOT EXISTS console_audit_log (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	request_id VARCHAR(64) NOT NULL,
	actor_id BIGINT NOT NULL DEFAULT 0,
	resource VARCHAR(128) NOT NULL,
	entity_id VARCHAR(64) NOT NULL DEFAULT '',
	action VARCHAR(16) NOT NULL,
	ok BOOLEAN NOT NULL,
	message VARCHAR(512) NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	INDEX idx_console_audit_created (created_at)
)`

// MySQLRecorder writes entries to console_audit_log.
type MySQLRecorder struct {
	DB *sql.DB
}

// NewMySQLRecorder creates the table when it is missing.
func NewMySQLRecorder(ctx context.Context, db *sql.DB) (*MySQLRecorder, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("audit: create table: %w", err)
	}
	return &MySQLRecorder{DB: db}, nil
}

func (r *MySQLRecorder) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO console_audit_log
			(request_id, actor_id, resource, entity_id, action, ok, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.RequestID, e.ActorID, e.Resource, e.EntityID, e.Action, e.OK, truncate(e.Message, 512), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}
	return nil
}

// Recent lists the newest entries first. limit is clamped to 1..200.
func (r *MySQLRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, request_id, actor_id, resource, entity_id, action, ok, message, created_at
		FROM console_audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("audit: query: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.ActorID, &e.Resource, &e.EntityID, &e.Action, &e.OK, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("audit: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Safe wraps a Recorder so that a failing audit write never fails the caller.
func Safe(r Recorder) func(ctx context.Context, e Entry) {
	return func(ctx context.Context, e Entry) {
		if err := r.Record(ctx, e); err != nil {
			log.Printf("audit: %s %s %s not recorded: %v", e.Action, e.Resource, e.EntityID, err)
		}
	}
}

func clampLimit(limit int) int {
	switch {
	case limit < 1:
		return 50
	case limit > 200:
		return 200
	}
	return limit
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

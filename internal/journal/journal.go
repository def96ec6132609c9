// Package journal provides SQLite-backed history of rps rounds and to-do
// mutations.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fentz26/deskkit/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultLimit caps history queries when the caller passes a non-positive limit.
const DefaultLimit = 50

// Journal is an append-only history store.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database and runs migrations.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return j, nil
}

// Close closes the database connection. A nil journal is a no-op.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		user_move TEXT NOT NULL,
		computer_move TEXT NOT NULL,
		outcome TEXT NOT NULL,
		user_score INTEGER NOT NULL,
		computer_score INTEGER NOT NULL,
		played_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS task_events (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		task_id TEXT NOT NULL,
		text TEXT,
		inputs_hash TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds(played_at);
	CREATE INDEX IF NOT EXISTS idx_task_events_created_at ON task_events(created_at);
	`
	_, err := j.db.Exec(schema)
	return err
}

// --- Rounds ---

// RecordRound appends a round. ID and PlayedAt are filled in when empty.
func (j *Journal) RecordRound(ctx context.Context, r models.RoundRecord) (*models.RoundRecord, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now().UTC()
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO rounds (id, user_move, computer_move, outcome, user_score, computer_score, played_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserMove, r.ComputerMove, r.Outcome, r.UserScore, r.ComputerScore, r.PlayedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert round: %w", err)
	}
	return &r, nil
}

// Rounds returns the most recent rounds, newest first.
func (j *Journal) Rounds(ctx context.Context, limit int) ([]models.RoundRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, user_move, computer_move, outcome, user_score, computer_score, played_at FROM rounds ORDER BY rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []models.RoundRecord
	for rows.Next() {
		var r models.RoundRecord
		if err := rows.Scan(&r.ID, &r.UserMove, &r.ComputerMove, &r.Outcome, &r.UserScore, &r.ComputerScore, &r.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// --- Task events ---

// RecordTaskEvent appends a to-do mutation.
func (j *Journal) RecordTaskEvent(ctx context.Context, action models.TaskAction, taskID, text, inputsHash string) (*models.TaskEvent, error) {
	ev := &models.TaskEvent{
		ID:         uuid.New().String(),
		Action:     action,
		TaskID:     taskID,
		Text:       text,
		InputsHash: inputsHash,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO task_events (id, action, task_id, text, inputs_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Action, ev.TaskID, ev.Text, ev.InputsHash, ev.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task event: %w", err)
	}
	return ev, nil
}

// TaskEvents returns the most recent to-do mutations, newest first.
func (j *Journal) TaskEvents(ctx context.Context, limit int) ([]models.TaskEvent, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, action, task_id, text, inputs_hash, created_at FROM task_events ORDER BY rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query task events: %w", err)
	}
	defer rows.Close()

	var events []models.TaskEvent
	for rows.Next() {
		var ev models.TaskEvent
		var text sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Action, &ev.TaskID, &text, &ev.InputsHash, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task event: %w", err)
		}
		if text.Valid {
			ev.Text = text.String
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS archived_task (
	id           TEXT PRIMARY KEY,
	status       TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL,
	source_ref   TEXT NOT NULL,
	directive    TEXT NOT NULL DEFAULT '',
	raw_text     TEXT NOT NULL DEFAULT '',
	structured   TEXT,
	reconciled   TEXT,
	report_ref   TEXT NOT NULL DEFAULT '',
	error        TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS archived_log (
	task_id   TEXT NOT NULL,
	ts        TEXT NOT NULL,
	level     TEXT NOT NULL,
	message   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS archived_log_task_idx ON archived_log (task_id);
`

// SQLiteArchive stores terminal task records in a local SQLite database.
type SQLiteArchive struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (and if needed initializes) the archive database at dsn,
// e.g. "file:archive.db".
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*SQLiteArchive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite archive: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite archive schema: %w", err)
	}
	logger.Info("archive.sqlite.ready", "dsn", dsn)
	return &SQLiteArchive{db: db, logger: logger}, nil
}

func (a *SQLiteArchive) SaveTask(ctx context.Context, snap task.Snapshot) error {
	structured, reconciled, err := marshalDocs(snap)
	if err != nil {
		return err
	}
	_, err = a.db.ExecContext(ctx, `
		INSERT INTO archived_task (id, status, created_at, updated_at, source_ref, directive, raw_text, structured, reconciled, report_ref, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at,
			raw_text = excluded.raw_text,
			structured = excluded.structured,
			reconciled = excluded.reconciled,
			report_ref = excluded.report_ref,
			error = excluded.error`,
		snap.ID.String(), string(snap.Status),
		snap.CreatedAt.UTC().Format(time.RFC3339Nano), snap.UpdatedAt.UTC().Format(time.RFC3339Nano),
		snap.SourceRef, snap.Directive, snap.RawText, structured, reconciled, snap.ReportRef, snap.Error)
	if err != nil {
		return fmt.Errorf("archive task: %w", err)
	}
	return nil
}

func (a *SQLiteArchive) SaveLogs(ctx context.Context, taskID uuid.UUID, entries []logsink.Entry) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("archive logs: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-archiving replaces the task's log rows rather than duplicating them.
	if _, err := tx.ExecContext(ctx, `DELETE FROM archived_log WHERE task_id = ?`, taskID.String()); err != nil {
		return fmt.Errorf("archive logs: %w", err)
	}
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO archived_log (task_id, ts, level, message) VALUES (?, ?, ?, ?)`,
			taskID.String(), e.Timestamp.UTC().Format(time.RFC3339Nano), string(e.Level), e.Message); err != nil {
			return fmt.Errorf("archive logs: %w", err)
		}
	}
	return tx.Commit()
}

func (a *SQLiteArchive) GetTask(ctx context.Context, taskID uuid.UUID) (task.Snapshot, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, status, created_at, updated_at, source_ref, directive, raw_text, structured, reconciled, report_ref, error
		FROM archived_task WHERE id = ?`, taskID.String())

	var snap task.Snapshot
	var id, status, createdAt, updatedAt string
	var structured, reconciled sql.NullString
	err := row.Scan(&id, &status, &createdAt, &updatedAt, &snap.SourceRef, &snap.Directive,
		&snap.RawText, &structured, &reconciled, &snap.ReportRef, &snap.Error)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Snapshot{}, common.ErrNotFound
	}
	if err != nil {
		return task.Snapshot{}, fmt.Errorf("query archived task: %w", err)
	}

	snap.ID, _ = uuid.Parse(id)
	snap.Status = constants.TaskStatus(status)
	snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	snap.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	if structured.Valid && structured.String != "" {
		_ = json.Unmarshal([]byte(structured.String), &snap.Structured)
	}
	if reconciled.Valid && reconciled.String != "" {
		_ = json.Unmarshal([]byte(reconciled.String), &snap.Reconciled)
	}
	return snap, nil
}

func (a *SQLiteArchive) GetLogs(ctx context.Context, taskID uuid.UUID) ([]logsink.Entry, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT ts, level, message FROM archived_log WHERE task_id = ? ORDER BY rowid`, taskID.String())
	if err != nil {
		return nil, fmt.Errorf("query archived logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []logsink.Entry
	for rows.Next() {
		var ts, level, message string
		if err := rows.Scan(&ts, &level, &message); err != nil {
			return nil, fmt.Errorf("scan archived log: %w", err)
		}
		e := logsink.Entry{TaskID: taskID, Level: logsink.Level(level), Message: message}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (a *SQLiteArchive) Close() error { return a.db.Close() }

func marshalDocs(snap task.Snapshot) (structured, reconciled string, err error) {
	if snap.Structured != nil {
		b, err := json.Marshal(snap.Structured)
		if err != nil {
			return "", "", fmt.Errorf("marshal structured result: %w", err)
		}
		structured = string(b)
	}
	if snap.Reconciled != nil {
		b, err := json.Marshal(snap.Reconciled)
		if err != nil {
			return "", "", fmt.Errorf("marshal reconciled result: %w", err)
		}
		reconciled = string(b)
	}
	return structured, reconciled, nil
}

package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS archived_task (
	id           UUID PRIMARY KEY,
	status       TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL,
	source_ref   TEXT NOT NULL,
	directive    TEXT NOT NULL DEFAULT '',
	raw_text     TEXT NOT NULL DEFAULT '',
	structured   JSONB,
	reconciled   JSONB,
	report_ref   TEXT NOT NULL DEFAULT '',
	error        TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS archived_log (
	seq       BIGSERIAL PRIMARY KEY,
	task_id   UUID NOT NULL,
	ts        TIMESTAMPTZ NOT NULL,
	level     TEXT NOT NULL,
	message   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS archived_log_task_idx ON archived_log (task_id);
`

// PGConfig mirrors the pool knobs we care about for the archive connection.
type PGConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// PostgresArchive stores terminal task records in Postgres.
type PostgresArchive struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// OpenPostgres creates the pool and initializes the archive schema.
func OpenPostgres(ctx context.Context, cfg PGConfig, logger *slog.Logger) (*PostgresArchive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse archive dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "pdf-reconciler"

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect archive db: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	logger.Info("archive.postgres.ready")
	return &PostgresArchive{pool: pool, logger: logger}, nil
}

func (a *PostgresArchive) SaveTask(ctx context.Context, snap task.Snapshot) error {
	structured, reconciled, err := marshalDocs(snap)
	if err != nil {
		return err
	}
	var structuredArg, reconciledArg any
	if structured != "" {
		structuredArg = structured
	}
	if reconciled != "" {
		reconciledArg = reconciled
	}
	_, err = a.pool.Exec(ctx, `
		INSERT INTO archived_task (id, status, created_at, updated_at, source_ref, directive, raw_text, structured, reconciled, report_ref, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			raw_text = EXCLUDED.raw_text,
			structured = EXCLUDED.structured,
			reconciled = EXCLUDED.reconciled,
			report_ref = EXCLUDED.report_ref,
			error = EXCLUDED.error`,
		snap.ID, string(snap.Status), snap.CreatedAt, snap.UpdatedAt,
		snap.SourceRef, snap.Directive, snap.RawText, structuredArg, reconciledArg, snap.ReportRef, snap.Error)
	if err != nil {
		return fmt.Errorf("archive task: %w", err)
	}
	return nil
}

func (a *PostgresArchive) SaveLogs(ctx context.Context, taskID uuid.UUID, entries []logsink.Entry) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("archive logs: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM archived_log WHERE task_id = $1`, taskID); err != nil {
		return fmt.Errorf("archive logs: %w", err)
	}
	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO archived_log (task_id, ts, level, message) VALUES ($1, $2, $3, $4)`,
			taskID, e.Timestamp, string(e.Level), e.Message); err != nil {
			return fmt.Errorf("archive logs: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (a *PostgresArchive) GetTask(ctx context.Context, taskID uuid.UUID) (task.Snapshot, error) {
	row := a.pool.QueryRow(ctx, `
		SELECT id, status, created_at, updated_at, source_ref, directive, raw_text, structured, reconciled, report_ref, error
		FROM archived_task WHERE id = $1`, taskID)

	var snap task.Snapshot
	var status string
	var structured, reconciled []byte
	err := row.Scan(&snap.ID, &status, &snap.CreatedAt, &snap.UpdatedAt, &snap.SourceRef, &snap.Directive,
		&snap.RawText, &structured, &reconciled, &snap.ReportRef, &snap.Error)
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Snapshot{}, common.ErrNotFound
	}
	if err != nil {
		return task.Snapshot{}, fmt.Errorf("query archived task: %w", err)
	}

	snap.Status = constants.TaskStatus(status)
	if len(structured) > 0 {
		_ = json.Unmarshal(structured, &snap.Structured)
	}
	if len(reconciled) > 0 {
		_ = json.Unmarshal(reconciled, &snap.Reconciled)
	}
	return snap, nil
}

func (a *PostgresArchive) GetLogs(ctx context.Context, taskID uuid.UUID) ([]logsink.Entry, error) {
	rows, err := a.pool.Query(ctx,
		`SELECT ts, level, message FROM archived_log WHERE task_id = $1 ORDER BY seq`, taskID)
	if err != nil {
		return nil, fmt.Errorf("query archived logs: %w", err)
	}
	defer rows.Close()

	var out []logsink.Entry
	for rows.Next() {
		var e logsink.Entry
		var level string
		if err := rows.Scan(&e.Timestamp, &level, &e.Message); err != nil {
			return nil, fmt.Errorf("scan archived log: %w", err)
		}
		e.TaskID = taskID
		e.Level = logsink.Level(level)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (a *PostgresArchive) Close() error {
	a.pool.Close()
	return nil
}

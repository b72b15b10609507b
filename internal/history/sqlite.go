package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/pyanalyzer/foundation/pylang/diag"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
)

// SQLiteRunStore implements RunStore using SQLite
type SQLiteRunStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteRunConfig holds configuration for the SQLite store
type SQLiteRunConfig struct {
	Path string
}

// DefaultRunConfig returns default configuration
func DefaultRunConfig() SQLiteRunConfig {
	return SQLiteRunConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteRunStore creates a new SQLite-based run store
func NewSQLiteRunStore(cfg SQLiteRunConfig) (*SQLiteRunStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteRunStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteRunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		status TEXT NOT NULL,
		tokens INTEGER NOT NULL,
		symbols INTEGER NOT NULL,
		lexical_errors INTEGER NOT NULL,
		syntax_errors INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS diagnostics (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		code TEXT NOT NULL,
		line INTEGER NOT NULL,
		col INTEGER NOT NULL,
		message TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save records a run and its diagnostics
func (s *SQLiteRunStore) Save(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		return mdwerror.New("run ID is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("history.Save")
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, timestamp, source, status, tokens, symbols, lexical_errors, syntax_errors, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Timestamp.UTC(), run.Source, run.Status, run.Tokens, run.Symbols,
		run.LexicalErrors, run.SyntaxErrors, int64(run.Duration))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO diagnostics (run_id, seq, code, line, col, message)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, d := range run.Diagnostics {
		if _, err := stmt.ExecContext(ctx, run.ID, i, string(d.Code), d.Line, d.Column, d.Message); err != nil {
			return fmt.Errorf("failed to insert diagnostic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Get retrieves a run by ID or unique ID prefix
func (s *SQLiteRunStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, source, status, tokens, symbols, lexical_errors, syntax_errors, duration_ns
		FROM runs WHERE id = ? OR substr(id, 1, length(?)) = ?
		ORDER BY id = ? DESC LIMIT 2
	`, id, id, id, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}

	switch {
	case len(runs) == 0:
		return nil, ErrNotFound
	case len(runs) > 1 && runs[0].ID != id:
		return nil, ErrAmbiguous
	}
	run := runs[0]

	drows, err := s.db.QueryContext(ctx, `
		SELECT code, line, col, message FROM diagnostics WHERE run_id = ? ORDER BY seq
	`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostics: %w", err)
	}
	defer drows.Close()

	for drows.Next() {
		var d diag.Diagnostic
		var code string
		if err := drows.Scan(&code, &d.Line, &d.Column, &d.Message); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}
		d.Code = mdwerror.Code(code)
		run.Diagnostics = append(run.Diagnostics, d)
	}
	return run, drows.Err()
}

// List retrieves runs based on filter criteria
func (s *SQLiteRunStore) List(ctx context.Context, filter RunFilter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, timestamp, source, status, tokens, symbols, lexical_errors, syntax_errors, duration_ns FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}
	if filter.FailedOnly {
		query += " AND lexical_errors + syntax_errors > 0"
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]*Run, error) {
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var durationNS int64
		if err := rows.Scan(&run.ID, &run.Timestamp, &run.Source, &run.Status, &run.Tokens,
			&run.Symbols, &run.LexicalErrors, &run.SyntaxErrors, &durationNS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Duration = time.Duration(durationNS)
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// Stats returns run statistics
func (s *SQLiteRunStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN lexical_errors + syntax_errors > 0 THEN 1 ELSE 0 END), 0),
		       COUNT(DISTINCT source)
		FROM runs
	`).Scan(&stats.Total, &stats.Failed, &stats.Sources)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}

	var latest sql.NullString
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(timestamp) FROM runs`).Scan(&latest); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}
	if latest.Valid {
		if t, err := parseTimestamp(latest.String); err == nil {
			stats.Latest = t
		}
	}
	return stats, nil
}

// parseTimestamp reads the text form go-sqlite3 stores for time values;
// aggregates like MAX() lose the column type and come back as text.
func parseTimestamp(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %s", s)
}

// Prune deletes all but the newest keep runs
func (s *SQLiteRunStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		return 0, nil
	}
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY timestamp DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Vacuum optimizes the database
func (s *SQLiteRunStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `VACUUM`)
	return err
}

// Close closes the database connection
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound reports that no run matches the requested identifier.
	ErrNotFound = errors.New("run not found")
	// ErrAmbiguous reports an identifier prefix matching several runs.
	ErrAmbiguous = errors.New("run id prefix is ambiguous")
	// ErrLocked reports that another process holds the history lock.
	ErrLocked = errors.New("history database is locked by another process")
)

// timestampLayout is fixed-width so created_at sorts lexicographically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const lockRetryDelay = 50 * time.Millisecond

// Run is one recorded summary.
type Run struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ExcludeSource string    `json:"exclude_source"`
	TextSource    string    `json:"text_source"`
	Mode          string    `json:"mode"`
	Pattern       string    `json:"pattern,omitempty"`
	Take          int       `json:"take"`
	UnitCount     int       `json:"unit_count"`
	Selected      []int     `json:"selected"`
	Summary       string    `json:"summary"`
}

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database at path and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: flock.New(path + ".lock")}
	if err := store.withLock(ctx, store.migrate); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) withLock(ctx context.Context, fn func(context.Context) error) error {
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	defer func() {
		_ = s.lock.Unlock()
	}()
	return fn(ctx)
}

// Record inserts run, assigning an ID and timestamp when they are unset.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()
	if run.Selected == nil {
		run.Selected = []int{}
	}

	selected, err := json.Marshal(run.Selected)
	if err != nil {
		return nil, fmt.Errorf("marshal selection: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, created_at, exclude_source, text_source, mode, pattern,
            take, unit_count, selected_json, summary
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(timestampLayout),
		run.ExcludeSource,
		run.TextSource,
		run.Mode,
		run.Pattern,
		run.Take,
		run.UnitCount,
		string(selected),
		run.Summary,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &run, nil
}

const selectColumns = `id, created_at, exclude_source, text_source, mode, pattern,
    take, unit_count, selected_json, summary`

// List returns up to limit runs, newest first. limit <= 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Get fetches a run by full ID or unique ID prefix.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM runs WHERE id = ? OR substr(id, 1, ?) = ? ORDER BY id = ? DESC LIMIT 2`,
		id, len(id), id, id)
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run: %w", err)
	}

	switch {
	case len(matches) == 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case matches[0].ID == id || len(matches) == 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}
}

// Prune deletes all but the newest keep runs. keep <= 0 is a no-op.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	var removed int64
	err := s.withLock(ctx, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx,
			`DELETE FROM runs WHERE id NOT IN (
                SELECT id FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?
            )`, keep)
		if err != nil {
			return fmt.Errorf("prune runs: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

// Clear deletes every recorded run.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := s.withLock(ctx, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
		if err != nil {
			return fmt.Errorf("clear runs: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run       Run
		createdAt string
		selected  string
	)
	if err := row.Scan(
		&run.ID,
		&createdAt,
		&run.ExcludeSource,
		&run.TextSource,
		&run.Mode,
		&run.Pattern,
		&run.Take,
		&run.UnitCount,
		&selected,
		&run.Summary,
	); err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	ts, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = ts
	if err := json.Unmarshal([]byte(selected), &run.Selected); err != nil {
		return nil, fmt.Errorf("decode selection for run %s: %w", run.ID, err)
	}
	return &run, nil
}

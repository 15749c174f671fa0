package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/raphi011/runlog/internal/run"
)

var (
	// ErrDuplicateRun is returned when a run already exists at the same date and time.
	ErrDuplicateRun = errors.New("a run is already logged at this date and time")
	// ErrNotFound is returned when updating or deleting an unknown run id.
	ErrNotFound = errors.New("run not found")
	// ErrMissingID is returned when updating a run that was never saved.
	ErrMissingID = errors.New("run must have an id to be updated")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	time_started TEXT NOT NULL,
	distance_miles REAL NOT NULL,
	note TEXT,
	created_at TEXT NOT NULL,
	UNIQUE(date, time_started)
);

CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(date DESC);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

const selectRuns = `SELECT id, date, time_started, distance_miles, note, created_at FROM runs`

// Store is the SQLite-backed run repository.
// It is not meant to be shared between processes; see package lock.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// a single connection keeps writes serialized within the process
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores a new run and returns its id. The id is also set on r.
func (s *Store) Insert(ctx context.Context, r *run.Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (date, time_started, distance_miles, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.Date.String(),
		r.TimeStarted.String(),
		r.DistanceMiles,
		nullIfEmpty(r.Note),
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	r.ID = id
	return id, nil
}

// All returns every stored run, most recent first.
func (s *Store) All(ctx context.Context) ([]run.Run, error) {
	return s.query(ctx, selectRuns+` ORDER BY date DESC, time_started DESC`)
}

// Between returns runs dated from..to inclusive, most recent first.
func (s *Store) Between(ctx context.Context, from, to run.Date) ([]run.Run, error) {
	return s.query(ctx,
		selectRuns+` WHERE date >= ? AND date <= ? ORDER BY date DESC, time_started DESC`,
		from.String(), to.String(),
	)
}

// Update overwrites date, time, distance and note of an existing run.
// CreatedAt is never changed.
func (s *Store) Update(ctx context.Context, r run.Run) error {
	if !r.Saved() {
		return ErrMissingID
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET date = ?, time_started = ?, distance_miles = ?, note = ? WHERE id = ?`,
		r.Date.String(),
		r.TimeStarted.String(),
		r.DistanceMiles,
		nullIfEmpty(r.Note),
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("update run %d: %w", r.ID, translate(err))
	}
	return expectAffected(res, r.ID)
}

// Delete removes the run with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run %d: %w", id, err)
	}
	return expectAffected(res, id)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]run.Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []run.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}

func scanRun(rows *sql.Rows) (run.Run, error) {
	var (
		r                           run.Run
		dateStr, timeStr, createdAt string
		note                        sql.NullString
	)
	if err := rows.Scan(&r.ID, &dateStr, &timeStr, &r.DistanceMiles, &note, &createdAt); err != nil {
		return run.Run{}, fmt.Errorf("scan run: %w", err)
	}

	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return run.Run{}, fmt.Errorf("run %d: bad date %q: %w", r.ID, dateStr, err)
	}
	t, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return run.Run{}, fmt.Errorf("run %d: bad time %q: %w", r.ID, timeStr, err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return run.Run{}, fmt.Errorf("run %d: bad created_at %q: %w", r.ID, createdAt, err)
	}

	r.Date = run.DateOf(d)
	r.TimeStarted = run.TimeOf(t)
	r.Note = note.String
	r.CreatedAt = created.UTC()
	return r, nil
}

func expectAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %d: %w", id, ErrNotFound)
	}
	return nil
}

// translate maps driver constraint errors onto package errors.
func translate(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return ErrDuplicateRun
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateRun
	}
	return err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

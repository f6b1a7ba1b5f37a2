// Package store persists work sessions in a local SQLite file and owns the
// authoritative copy of every record. All other components receive copies.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/naveenspark/worktime/pkg/clock"
	"github.com/naveenspark/worktime/pkg/domain"
)

// timeFormat is the column encoding for both timestamps, local wall clock.
const timeFormat = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS work_sessions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	start_time DATETIME NOT NULL,
	end_time   DATETIME
);`

// Options configures Open. The zero value is usable in production.
type Options struct {
	// Logger receives store diagnostics; defaults to slog.Default().
	Logger *slog.Logger
	// Clock supplies "now" for the consistency audit's effective-end rule;
	// defaults to the system clock.
	Clock clock.Clock
	// Fatalf is invoked on a corruption finding. The default logs the
	// finding and terminates the process; corruption is never returned as
	// a normal error because continuing risks compounding bad data.
	Fatalf func(format string, args ...any)
}

// Store is the SQLite-backed session store. One open session at most is an
// application-level invariant, checked before every insert-start; the store
// assumes a single writer and serializes its own calls with a mutex.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	log    *slog.Logger
	clock  clock.Clock
	fatalf func(format string, args ...any)
	audit  sync.WaitGroup
}

// Open opens (creating if missing) the session database at path, ensures the
// schema exists, and launches the consistency audit in the background. The
// audit only reads; a corruption finding routes through Options.Fatalf.
func Open(path string, opts Options) (*Store, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}
	fatalf := opts.Fatalf
	if fatalf == nil {
		fatalf = func(format string, args ...any) {
			log.Error(fmt.Sprintf(format, args...))
			os.Exit(1)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrap("open", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close() //nolint:errcheck
		return nil, wrap("migrate", err)
	}

	s := &Store{db: db, log: log, clock: clk, fatalf: fatalf}
	s.audit.Add(1)
	go s.runAudit()
	return s, nil
}

// Close waits for the startup audit to finish and releases the database.
func (s *Store) Close() error {
	s.audit.Wait()
	return s.db.Close()
}

// LastSession returns the most recent session by id, or nil on an empty store.
func (s *Store) LastSession() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(
		`SELECT id, start_time, end_time FROM work_sessions ORDER BY id DESC LIMIT 1`)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("last session", err)
	}
	return &sess, nil
}

// LastN returns up to n most recent sessions, newest first.
func (s *Store) LastN(n int) ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, start_time, end_time FROM work_sessions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, wrap("last n", err)
	}
	return collect("last n", rows)
}

// Since returns all sessions whose start date is on or after day, oldest
// first. Only the date part of day is significant.
func (s *Store) Since(day time.Time) ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, start_time, end_time FROM work_sessions
		 WHERE date(start_time) >= date(?) ORDER BY id ASC`,
		day.Format("2006-01-02"))
	if err != nil {
		return nil, wrap("since", err)
	}
	return collect("since", rows)
}

// ByID returns the session with the given id, or ErrNotFound.
func (s *Store) ByID(id int64) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(
		`SELECT id, start_time, end_time FROM work_sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return domain.Session{}, ErrNotFound
	}
	if err != nil {
		return domain.Session{}, wrap("by id", err)
	}
	return sess, nil
}

// InsertStart opens a new session at now. Refuses with ErrAlreadyStarted if
// an open session exists; finding more than one open session is corruption
// and routes through the fatal hook instead of returning normally.
func (s *Store) InsertStart(now time.Time) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var open int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM work_sessions WHERE end_time IS NULL`).Scan(&open)
	if err != nil {
		return time.Time{}, wrap("count open", err)
	}
	switch {
	case open > 1:
		s.fatalf("session table corrupted: %d open sessions, at most one allowed", open)
		return time.Time{}, fmt.Errorf("corrupted: %d open sessions", open)
	case open == 1:
		return time.Time{}, domain.ErrAlreadyStarted
	}

	if _, err := s.db.Exec(
		`INSERT INTO work_sessions (start_time) VALUES (?)`,
		now.Format(timeFormat)); err != nil {
		return time.Time{}, wrap("insert start", err)
	}
	return now, nil
}

// InsertStop closes the session with the given id at now.
func (s *Store) InsertStop(id int64, now time.Time) (time.Time, error) {
	if err := s.updateColumn("end_time", id, now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// UpdateStartTime overwrites the start timestamp of the given session.
func (s *Store) UpdateStartTime(id int64, t time.Time) error {
	return s.updateColumn("start_time", id, t)
}

// UpdateEndTime overwrites the end timestamp of the given session. Applied
// to an open session this closes it. The store deliberately accepts
// corrections that invert or overlap intervals; the consistency audit is
// the backstop that detects them.
func (s *Store) UpdateEndTime(id int64, t time.Time) error {
	return s.updateColumn("end_time", id, t)
}

func (s *Store) updateColumn(column string, id int64, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// column is one of two literals above, never user input.
	res, err := s.db.Exec(
		`UPDATE work_sessions SET `+column+` = ? WHERE id = ?`,
		t.Format(timeFormat), id)
	if err != nil {
		return wrap("update "+column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap("update "+column, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// allByStart reads the complete table ordered by start time, for the audit.
func (s *Store) allByStart() ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, start_time, end_time FROM work_sessions ORDER BY start_time ASC`)
	if err != nil {
		return nil, wrap("all", err)
	}
	return collect("all", rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (domain.Session, error) {
	var (
		sess  domain.Session
		start string
		end   sql.NullString
	)
	if err := row.Scan(&sess.ID, &start, &end); err != nil {
		return domain.Session{}, err
	}
	t, err := time.ParseInLocation(timeFormat, start, time.Local)
	if err != nil {
		return domain.Session{}, fmt.Errorf("parse start_time %q: %w", start, err)
	}
	sess.Start = t
	if end.Valid {
		t, err := time.ParseInLocation(timeFormat, end.String, time.Local)
		if err != nil {
			return domain.Session{}, fmt.Errorf("parse end_time %q: %w", end.String, err)
		}
		sess.End = &t
	}
	return sess, nil
}

func collect(op string, rows *sql.Rows) ([]domain.Session, error) {
	defer rows.Close() //nolint:errcheck

	var out []domain.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

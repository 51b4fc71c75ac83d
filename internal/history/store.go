// Package history keeps a small local sqlite file with the user's recent
// lookups and the anonymous-lookup counter. Everything here is best-effort:
// a broken history file must never fail a lookup, so callers log errors and
// move on.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS lookups (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	term TEXT NOT NULL,
	found INTEGER NOT NULL DEFAULT 1,
	looked_up_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lookups_time ON lookups(looked_up_at);
CREATE TABLE IF NOT EXISTS counters (
	name TEXT PRIMARY KEY,
	value INTEGER NOT NULL DEFAULT 0
)`

const guestCounter = "guest_lookups"

// Lookup is one recorded search.
type Lookup struct {
	Term       string
	Found      bool
	LookedUpAt time.Time
}

// Store wraps the sqlite history file.
type Store struct {
	db    *sql.DB
	clock func() time.Time
}

// Open opens (creating if needed) the history database at path and runs
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, clock: time.Now}, nil
}

func migrate(db *sql.DB) error {
	for _, stmt := range strings.Split(migrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate history db: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordLookup appends one search to the log.
func (s *Store) RecordLookup(term string, found bool) error {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return fmt.Errorf("term must be non-empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO lookups (term, found, looked_up_at) VALUES (?, ?, ?)`,
		term, found, s.clock().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record lookup: %w", err)
	}
	return nil
}

// Recent returns the latest lookups, newest first.
func (s *Store) Recent(limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT term, found, looked_up_at FROM lookups ORDER BY looked_up_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list lookups: %w", err)
	}
	defer rows.Close()

	var out []Lookup
	for rows.Next() {
		var l Lookup
		if err := rows.Scan(&l.Term, &l.Found, &l.LookedUpAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// IncrementGuestLookups bumps the anonymous-lookup counter and returns the
// new value. The cap this feeds is a UX nudge toward signing up, not an
// enforcement boundary; the server applies the real quota.
func (s *Store) IncrementGuestLookups() (int, error) {
	var value int
	err := s.db.QueryRow(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1
		 RETURNING value`,
		guestCounter,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("increment guest counter: %w", err)
	}
	return value, nil
}

// GuestLookups reads the anonymous-lookup counter.
func (s *Store) GuestLookups() (int, error) {
	var value int
	err := s.db.QueryRow(`SELECT value FROM counters WHERE name = ?`, guestCounter).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read guest counter: %w", err)
	}
	return value, nil
}

// ResetGuestLookups zeroes the counter, used after a successful login.
func (s *Store) ResetGuestLookups() error {
	_, err := s.db.Exec(`DELETE FROM counters WHERE name = ?`, guestCounter)
	if err != nil {
		return fmt.Errorf("reset guest counter: %w", err)
	}
	return nil
}

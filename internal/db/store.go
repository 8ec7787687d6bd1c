package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides read-write access to the routines SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "routines", "routines.sqlite")
}

// Open opens (or creates) the database with WAL and applies migrations.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Slot returns the named slot, or nil if it has never been written.
func (s *Store) Slot(key string) (*Slot, error) {
	row := s.db.QueryRow(`
		SELECT key, value, updatedAt
		FROM slots
		WHERE key = ?
	`, key)

	var slot Slot
	var updatedAt float64
	if err := row.Scan(&slot.Key, &slot.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}
	slot.UpdatedAt = timeFromUnix(updatedAt)

	return &slot, nil
}

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	slot, err := s.Slot(key)
	if err != nil || slot == nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updatedAt)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = excluded.updatedAt
	`, key, value, unixFromTime(s.now()))
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

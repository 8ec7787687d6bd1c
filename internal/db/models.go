// Package db provides SQLite-backed key/value slots for persisted app state.
package db

import "time"

// Slot is one named value in the slots table.
type Slot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

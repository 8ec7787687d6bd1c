// Package state owns the routine catalog, the edit mode flag and the player,
// and keeps the persisted catalog in step with every change.
package state

import (
	"log/slog"

	"github.com/jwulff/routines/internal/playback"
	"github.com/jwulff/routines/internal/routine"
)

// SlotKey is the storage slot holding the encoded catalog.
const SlotKey = "routines"

// Slots is the key/value storage the catalog is persisted to.
type Slots interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store is the single owner of application state. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Store struct {
	slots  Slots
	logger *slog.Logger

	catalog  routine.Catalog
	editMode bool

	player   *playback.Engine
	schedule playback.Schedule
	runID    string

	saveErr error
}

// Load builds a Store from the persisted catalog. A missing slot, a read
// error or content that does not decode all start from an empty catalog.
func Load(slots Slots, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		slots:   slots,
		logger:  logger,
		catalog: routine.Catalog{},
		player:  playback.NewEngine(),
	}

	raw, ok, err := slots.Get(SlotKey)
	switch {
	case err != nil:
		logger.Warn("read catalog failed, starting empty", "error", err)
	case !ok:
		logger.Info("no saved catalog, starting empty")
	default:
		c, err := routine.Decode(raw)
		if err != nil {
			logger.Warn("saved catalog is invalid, starting empty", "error", err)
			break
		}
		s.catalog = c
		logger.Info("catalog loaded", "routines", len(c))
	}
	return s
}

// Catalog returns the current catalog. Callers must not modify it.
func (s *Store) Catalog() routine.Catalog { return s.catalog }

// EditMode reports whether edit controls are exposed.
func (s *Store) EditMode() bool { return s.editMode }

// Playback returns the current player state.
func (s *Store) Playback() playback.Snapshot { return s.player.Snapshot() }

// LastSaveError returns the error from the most recent persistence write,
// or nil if it succeeded.
func (s *Store) LastSaveError() error { return s.saveErr }

// ToggleEditMode flips the edit mode flag and returns the new value. It
// gates nothing in Store; every mutation works in either mode.
func (s *Store) ToggleEditMode() bool {
	s.editMode = !s.editMode
	s.logger.Debug("edit mode", "enabled", s.editMode)
	return s.editMode
}

// AddRoutine appends a routine. Blank names are ignored.
func (s *Store) AddRoutine(name string) bool {
	next, ok := s.catalog.AddRoutine(name)
	return s.apply("add routine", next, ok)
}

// RenameRoutine renames the routine at index.
func (s *Store) RenameRoutine(index int, name string) bool {
	next, ok := s.catalog.RenameRoutine(index, name)
	return s.apply("rename routine", next, ok)
}

// DeleteRoutine removes the routine at index. A routine that is playing
// keeps playing from its snapshot.
func (s *Store) DeleteRoutine(index int) bool {
	next, ok := s.catalog.DeleteRoutine(index)
	return s.apply("delete routine", next, ok)
}

// AddTask appends a task of the given minutes to a routine.
func (s *Store) AddTask(routineIndex int, name, minutes string) bool {
	next, ok := s.catalog.AddTask(routineIndex, name, minutes)
	return s.apply("add task", next, ok)
}

// EditTask overwrites a task's name and minutes.
func (s *Store) EditTask(routineIndex, taskIndex int, name, minutes string) bool {
	next, ok := s.catalog.EditTask(routineIndex, taskIndex, name, minutes)
	return s.apply("edit task", next, ok)
}

// DeleteTask removes a task from a routine.
func (s *Store) DeleteTask(routineIndex, taskIndex int) bool {
	next, ok := s.catalog.DeleteTask(routineIndex, taskIndex)
	return s.apply("delete task", next, ok)
}

func (s *Store) apply(op string, next routine.Catalog, changed bool) bool {
	if !changed {
		s.logger.Debug("mutation ignored", "op", op)
		return false
	}
	s.catalog = next
	s.persist(op)
	return true
}

// persist writes the whole catalog. Failures are logged and kept for
// LastSaveError; the in-memory catalog stays as it is.
func (s *Store) persist(op string) {
	raw, err := routine.Encode(s.catalog)
	if err == nil {
		err = s.slots.Set(SlotKey, raw)
	}
	s.saveErr = err
	if err != nil {
		s.logger.Warn("save catalog failed", "op", op, "error", err)
		return
	}
	s.logger.Debug("catalog saved", "op", op, "routines", len(s.catalog))
}

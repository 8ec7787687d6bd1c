package state

import (
	"github.com/google/uuid"
	"github.com/jwulff/routines/internal/playback"
)

// Start plays a snapshot of the routine at index, replacing anything already
// playing. It returns the token the caller must attach to every tick it
// schedules for this run.
func (s *Store) Start(index int) (token uint64, ok bool) {
	if index < 0 || index >= len(s.catalog) {
		return 0, false
	}
	r := s.catalog[index]
	s.player.Start(r)
	s.runID = uuid.NewString()
	s.logger.Info("routine started", "run", s.runID, "routine", r.Name, "tasks", len(r.Tasks))
	return s.schedule.Arm(), true
}

// Tick applies one timer tick. A tick whose token was superseded or canceled
// changes nothing and reports ok=false; the caller should stop rescheduling
// it.
func (s *Store) Tick(token uint64) (tr playback.Transition, ok bool) {
	if !s.schedule.Live(token) {
		return playback.Ignored, false
	}
	tr = s.player.Tick()
	switch tr {
	case playback.Advanced:
		snap := s.player.Snapshot()
		task, _ := snap.CurrentTask()
		s.logger.Debug("next task", "run", s.runID, "index", snap.TaskIndex, "task", task.Name)
	case playback.Finished:
		s.schedule.Cancel()
		s.logger.Info("routine finished", "run", s.runID)
		s.runID = ""
	case playback.Ignored:
		s.schedule.Cancel()
	}
	return tr, true
}

// TogglePause pauses or resumes playback. Resuming returns a fresh token;
// pausing cancels the live one and returns 0.
func (s *Store) TogglePause() (token uint64, ok bool) {
	if !s.player.TogglePause() {
		return 0, false
	}
	if s.player.Snapshot().Status == playback.Paused {
		s.schedule.Cancel()
		s.logger.Info("routine paused", "run", s.runID)
		return 0, true
	}
	s.logger.Info("routine resumed", "run", s.runID)
	return s.schedule.Arm(), true
}

// Stop abandons playback.
func (s *Store) Stop() {
	if s.player.Snapshot().Status == playback.Idle {
		return
	}
	s.player.Stop()
	s.schedule.Cancel()
	s.logger.Info("routine stopped", "run", s.runID)
	s.runID = ""
}

// Ticking reports whether a tick chain is live.
func (s *Store) Ticking() bool {
	return s.schedule.Armed()
}

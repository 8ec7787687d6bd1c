// Package playback counts down through a routine's tasks one tick at a time.
//
// The Engine is a plain state machine with no clock of its own: whoever owns
// it delivers Tick once per second while it is Playing. Schedule hands out the
// tokens that keep that delivery down to a single live chain.
package playback

import "github.com/jwulff/routines/internal/routine"

// Status is the engine state.
type Status int

const (
	Idle Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Transition describes what a single Tick did.
type Transition int

const (
	// Ignored means the engine was not playing.
	Ignored Transition = iota
	// Counted means remaining time dropped by one second.
	Counted
	// Advanced means the engine moved on to the next task.
	Advanced
	// Finished means the last task ended and the engine went idle.
	Finished
	// Stalled means the remaining time is NaN and nothing can move.
	Stalled
)

func (t Transition) String() string {
	switch t {
	case Counted:
		return "counted"
	case Advanced:
		return "advanced"
	case Finished:
		return "finished"
	case Stalled:
		return "stalled"
	default:
		return "ignored"
	}
}

// Snapshot is a read-only view of the engine.
type Snapshot struct {
	Status    Status
	Routine   *routine.Routine // nil when idle
	TaskIndex int
	Remaining routine.Seconds
}

// Playing reports whether the countdown is running.
func (s Snapshot) Playing() bool { return s.Status == Playing }

// CurrentTask returns the task being counted down, if any.
func (s Snapshot) CurrentTask() (routine.Task, bool) {
	if s.Routine == nil || s.TaskIndex < 0 || s.TaskIndex >= len(s.Routine.Tasks) {
		return routine.Task{}, false
	}
	return s.Routine.Tasks[s.TaskIndex], true
}

// Engine holds the playback state for at most one routine.
type Engine struct {
	status    Status
	active    *routine.Routine
	index     int
	remaining routine.Seconds
}

// NewEngine returns an idle engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Start begins playing a copy of r from its first task, replacing whatever
// was playing before. Later edits to the caller's routine do not reach the
// copy.
func (e *Engine) Start(r routine.Routine) {
	snap := r.Clone()
	e.active = &snap
	e.index = 0
	e.remaining = 0
	if len(snap.Tasks) > 0 && !snap.Tasks[0].Duration.IsNaN() {
		e.remaining = snap.Tasks[0].Duration
	}
	e.status = Playing
}

// Tick advances the countdown by one second. A task whose time has run out
// hands over to the next one within the same tick, so a task that starts at
// zero is left on the tick after it was entered.
func (e *Engine) Tick() Transition {
	if e.status != Playing {
		return Ignored
	}
	if e.remaining.IsNaN() {
		return Stalled
	}
	if e.remaining > 0 {
		e.remaining--
		if e.remaining > 0 {
			return Counted
		}
	}
	return e.advance()
}

func (e *Engine) advance() Transition {
	if e.active != nil && e.index < len(e.active.Tasks)-1 {
		e.index++
		e.remaining = e.active.Tasks[e.index].Duration
		return Advanced
	}
	e.stop()
	return Finished
}

// TogglePause flips between Playing and Paused without touching the task
// index or remaining time. It reports false when the engine is idle.
func (e *Engine) TogglePause() bool {
	switch e.status {
	case Playing:
		e.status = Paused
	case Paused:
		e.status = Playing
	default:
		return false
	}
	return true
}

// Stop abandons the current routine.
func (e *Engine) Stop() {
	e.stop()
}

func (e *Engine) stop() {
	e.status = Idle
	e.active = nil
	e.index = 0
	e.remaining = 0
}

// Snapshot returns the current state. The routine pointer refers to a copy
// the caller may keep.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Status:    e.status,
		TaskIndex: e.index,
		Remaining: e.remaining,
	}
	if e.active != nil {
		r := e.active.Clone()
		s.Routine = &r
	}
	return s
}

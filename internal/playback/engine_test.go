package playback

import (
	"testing"

	"github.com/jwulff/routines/internal/routine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTasks() routine.Routine {
	return routine.Routine{Name: "Short", Tasks: []routine.Task{
		{Name: "A", Duration: 5},
		{Name: "B", Duration: 3},
	}}
}

func ticks(e *Engine, n int) Transition {
	var last Transition
	for i := 0; i < n; i++ {
		last = e.Tick()
	}
	return last
}

func TestNewEngineIsIdle(t *testing.T) {
	s := NewEngine().Snapshot()
	assert.Equal(t, Idle, s.Status)
	assert.Nil(t, s.Routine)
	assert.False(t, s.Playing())
}

func TestStartAndRunToCompletion(t *testing.T) {
	e := NewEngine()
	e.Start(twoTasks())

	s := e.Snapshot()
	require.Equal(t, Playing, s.Status)
	assert.Equal(t, 0, s.TaskIndex)
	assert.Equal(t, routine.Seconds(5), s.Remaining)

	assert.Equal(t, Counted, ticks(e, 4))
	s = e.Snapshot()
	assert.Equal(t, 0, s.TaskIndex)
	assert.Equal(t, routine.Seconds(1), s.Remaining)

	assert.Equal(t, Advanced, e.Tick())
	s = e.Snapshot()
	assert.Equal(t, 1, s.TaskIndex)
	assert.Equal(t, routine.Seconds(3), s.Remaining)
	task, ok := s.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "B", task.Name)

	assert.Equal(t, Finished, ticks(e, 3))
	s = e.Snapshot()
	assert.Equal(t, Idle, s.Status)
	assert.Nil(t, s.Routine)
}

func TestStartEmptyRoutine(t *testing.T) {
	e := NewEngine()
	e.Start(routine.Routine{Name: "Empty", Tasks: []routine.Task{}})

	s := e.Snapshot()
	assert.Equal(t, Playing, s.Status)
	assert.Equal(t, routine.Seconds(0), s.Remaining)

	assert.Equal(t, Finished, e.Tick())
	assert.Equal(t, Idle, e.Snapshot().Status)
	assert.Nil(t, e.Snapshot().Routine)
}

func TestZeroDurationTaskSkippedOneTickLate(t *testing.T) {
	e := NewEngine()
	e.Start(routine.Routine{Name: "Z", Tasks: []routine.Task{
		{Name: "Zero", Duration: 0},
		{Name: "Two", Duration: 2},
	}})

	s := e.Snapshot()
	assert.Equal(t, 0, s.TaskIndex, "zero task is shown until the first tick")
	assert.Equal(t, routine.Seconds(0), s.Remaining)

	assert.Equal(t, Advanced, e.Tick())
	s = e.Snapshot()
	assert.Equal(t, 1, s.TaskIndex)
	assert.Equal(t, routine.Seconds(2), s.Remaining)
}

func TestZeroDurationMiddleTask(t *testing.T) {
	e := NewEngine()
	e.Start(routine.Routine{Tasks: []routine.Task{{Duration: 1}, {Duration: 0}, {Duration: 2}}})

	assert.Equal(t, Advanced, e.Tick())
	assert.Equal(t, 1, e.Snapshot().TaskIndex)
	assert.Equal(t, Advanced, e.Tick())
	assert.Equal(t, 2, e.Snapshot().TaskIndex)
	assert.Equal(t, routine.Seconds(2), e.Snapshot().Remaining)
}

func TestNaNFirstTaskStartsAtZero(t *testing.T) {
	e := NewEngine()
	e.Start(routine.Routine{Tasks: []routine.Task{{Name: "bad", Duration: routine.NaN}, {Name: "ok", Duration: 4}}})

	assert.Equal(t, routine.Seconds(0), e.Snapshot().Remaining)
	assert.Equal(t, Advanced, e.Tick())
	assert.Equal(t, routine.Seconds(4), e.Snapshot().Remaining)
}

func TestNaNLaterTaskStalls(t *testing.T) {
	e := NewEngine()
	e.Start(routine.Routine{Tasks: []routine.Task{{Duration: 1}, {Duration: routine.NaN}, {Duration: 4}}})

	assert.Equal(t, Advanced, e.Tick())
	for i := 0; i < 10; i++ {
		assert.Equal(t, Stalled, e.Tick())
	}
	s := e.Snapshot()
	assert.Equal(t, Playing, s.Status)
	assert.Equal(t, 1, s.TaskIndex)
	assert.True(t, s.Remaining.IsNaN())
}

func TestPauseResumePreservesState(t *testing.T) {
	e := NewEngine()
	e.Start(twoTasks())
	ticks(e, 2)

	require.True(t, e.TogglePause())
	paused := e.Snapshot()
	assert.Equal(t, Paused, paused.Status)

	for i := 0; i < 5; i++ {
		assert.Equal(t, Ignored, e.Tick())
	}

	require.True(t, e.TogglePause())
	resumed := e.Snapshot()
	assert.Equal(t, Playing, resumed.Status)
	assert.Equal(t, paused.TaskIndex, resumed.TaskIndex)
	assert.Equal(t, paused.Remaining, resumed.Remaining)
	assert.Equal(t, routine.Seconds(3), resumed.Remaining)
}

func TestTogglePauseWhenIdle(t *testing.T) {
	e := NewEngine()
	assert.False(t, e.TogglePause())
	assert.Equal(t, Idle, e.Snapshot().Status)
	assert.Equal(t, Ignored, e.Tick())
}

func TestStartReplacesInFlight(t *testing.T) {
	e := NewEngine()
	e.Start(twoTasks())
	ticks(e, 6)
	require.Equal(t, 1, e.Snapshot().TaskIndex)

	e.Start(routine.Routine{Name: "Other", Tasks: []routine.Task{{Name: "Only", Duration: 9}}})
	s := e.Snapshot()
	assert.Equal(t, "Other", s.Routine.Name)
	assert.Equal(t, 0, s.TaskIndex)
	assert.Equal(t, routine.Seconds(9), s.Remaining)
}

func TestStartFromPausedPlays(t *testing.T) {
	e := NewEngine()
	e.Start(twoTasks())
	e.TogglePause()

	e.Start(twoTasks())
	assert.Equal(t, Playing, e.Snapshot().Status)
}

func TestSnapshotIsolatedFromSource(t *testing.T) {
	src := twoTasks()
	e := NewEngine()
	e.Start(src)

	src.Name = "Renamed"
	src.Tasks[1].Duration = 100

	s := e.Snapshot()
	assert.Equal(t, "Short", s.Routine.Name)
	assert.Equal(t, routine.Seconds(3), s.Routine.Tasks[1].Duration)

	s.Routine.Tasks[0].Name = "mutated"
	assert.Equal(t, "A", e.Snapshot().Routine.Tasks[0].Name)
}

func TestStop(t *testing.T) {
	e := NewEngine()
	e.Start(twoTasks())
	e.TogglePause()
	e.Stop()

	s := e.Snapshot()
	assert.Equal(t, Idle, s.Status)
	assert.Nil(t, s.Routine)
}

package routine

import (
	"slices"
	"strings"
)

// Every operation below returns a new Catalog and leaves the receiver
// untouched. The boolean reports whether anything changed; callers persist
// only when it is true.

// AddRoutine appends an empty routine. Blank names are ignored. Duplicate
// names are allowed.
func (c Catalog) AddRoutine(name string) (Catalog, bool) {
	if strings.TrimSpace(name) == "" {
		return c, false
	}
	next := make(Catalog, len(c), len(c)+1)
	copy(next, c)
	return append(next, Routine{Name: name, Tasks: []Task{}}), true
}

// RenameRoutine replaces the name of the routine at index. Any name is
// accepted, including the empty string.
func (c Catalog) RenameRoutine(index int, name string) (Catalog, bool) {
	if !c.validRoutine(index) {
		return c, false
	}
	next := slices.Clone(c)
	next[index].Name = name
	return next, true
}

// DeleteRoutine removes the routine at index. Later routines shift down by
// one.
func (c Catalog) DeleteRoutine(index int) (Catalog, bool) {
	if !c.validRoutine(index) {
		return c, false
	}
	next := make(Catalog, 0, len(c)-1)
	next = append(next, c[:index]...)
	return append(next, c[index+1:]...), true
}

// AddTask appends a task to the routine at routineIndex. Both name and
// minutes must be non-empty and minutes must parse; otherwise nothing
// changes.
func (c Catalog) AddTask(routineIndex int, name, minutes string) (Catalog, bool) {
	if !c.validRoutine(routineIndex) || name == "" || minutes == "" {
		return c, false
	}
	d := ParseMinutes(minutes)
	if d.IsNaN() {
		return c, false
	}
	return c.withTasks(routineIndex, func(tasks []Task) []Task {
		return append(tasks, Task{Name: name, Duration: d})
	}), true
}

// EditTask overwrites both fields of a task. Unlike AddTask it does not
// validate: a minutes value that does not parse stores NaN. Negative
// minutes parse to NaN as well, since a duration is never below zero.
func (c Catalog) EditTask(routineIndex, taskIndex int, name, minutes string) (Catalog, bool) {
	if !c.validTask(routineIndex, taskIndex) {
		return c, false
	}
	return c.withTasks(routineIndex, func(tasks []Task) []Task {
		tasks[taskIndex] = Task{Name: name, Duration: ParseMinutes(minutes)}
		return tasks
	}), true
}

// DeleteTask removes a task. Later tasks shift down by one.
func (c Catalog) DeleteTask(routineIndex, taskIndex int) (Catalog, bool) {
	if !c.validTask(routineIndex, taskIndex) {
		return c, false
	}
	return c.withTasks(routineIndex, func(tasks []Task) []Task {
		return slices.Delete(tasks, taskIndex, taskIndex+1)
	}), true
}

// withTasks copies the catalog and the task slice of one routine, then lets
// fn edit the copied tasks.
func (c Catalog) withTasks(routineIndex int, fn func([]Task) []Task) Catalog {
	next := slices.Clone(c)
	tasks := make([]Task, len(c[routineIndex].Tasks), len(c[routineIndex].Tasks)+1)
	copy(tasks, c[routineIndex].Tasks)
	next[routineIndex].Tasks = fn(tasks)
	return next
}

func (c Catalog) validRoutine(i int) bool {
	return i >= 0 && i < len(c)
}

func (c Catalog) validTask(ri, ti int) bool {
	return c.validRoutine(ri) && ti >= 0 && ti < len(c[ri].Tasks)
}

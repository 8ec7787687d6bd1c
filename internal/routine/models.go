// Package routine holds the routine catalog data model and the copy-on-write
// operations that edit it.
package routine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

// Seconds is a task duration in whole seconds.
//
// NaN marks a duration whose minutes input did not parse. It is stored and
// persisted as-is (JSON null) rather than coerced to zero.
type Seconds int

// NaN is the "not a number" duration.
const NaN Seconds = math.MinInt

// IsNaN reports whether s is the not-a-number duration.
func (s Seconds) IsNaN() bool { return s == NaN }

// MarshalJSON encodes NaN as null and everything else as an integer.
func (s Seconds) MarshalJSON() ([]byte, error) {
	if s.IsNaN() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%d", int(s))), nil
}

// UnmarshalJSON accepts an integer, a float (truncated) or null (NaN).
func (s *Seconds) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = NaN
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("task time: %w", err)
	}
	if f < 0 || f > math.MaxInt32 {
		*s = NaN
		return nil
	}
	*s = Seconds(int(f))
	return nil
}

// Task is a named unit of work. It has no identity beyond its position in
// the parent routine.
type Task struct {
	Name     string  `json:"name"`
	Duration Seconds `json:"time"`
}

// Routine is a named, ordered sequence of tasks.
type Routine struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Clone returns a copy of r that shares no memory with it.
func (r Routine) Clone() Routine {
	out := Routine{Name: r.Name, Tasks: make([]Task, len(r.Tasks))}
	copy(out.Tasks, r.Tasks)
	return out
}

// Catalog is the full list of routines. Routines are identified by index.
type Catalog []Routine

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, r := range c {
		out[i] = r.Clone()
	}
	return out
}

// Equal reports whether two catalogs hold the same routines in the same
// order.
func (c Catalog) Equal(other Catalog) bool {
	return slices.EqualFunc(c, other, func(a, b Routine) bool {
		return a.Name == b.Name && slices.Equal(a.Tasks, b.Tasks)
	})
}

package app

// TickMsg is one second of playback. Token identifies the tick chain that
// scheduled it; ticks from retired chains are dropped.
type TickMsg struct {
	Token uint64
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}

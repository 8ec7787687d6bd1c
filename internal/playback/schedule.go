package playback

// Schedule tracks the one tick chain allowed to drive an Engine.
//
// Each scheduled tick carries the token it was armed with. Arming again or
// canceling makes every older token stale, and a tick with a stale token must
// be dropped without touching the engine.
type Schedule struct {
	token uint64
	armed bool
}

// Arm starts a new chain and returns its token.
func (s *Schedule) Arm() uint64 {
	s.token++
	s.armed = true
	return s.token
}

// Cancel ends the current chain.
func (s *Schedule) Cancel() {
	s.armed = false
}

// Live reports whether token belongs to the current chain.
func (s *Schedule) Live(token uint64) bool {
	return s.armed && token == s.token
}

// Armed reports whether any chain is live.
func (s *Schedule) Armed() bool {
	return s.armed
}

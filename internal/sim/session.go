package sim

// Session owns one independent simulation: state, pointer, viewport metrics
// and seeds. Sessions share nothing, so several can run side by side.
type Session struct {
	State   *State
	Pointer Pointer
	Metrics Metrics
	Seeds   Seeds

	reduced bool
}

// NewSession creates a session seeded with seed, sized to a 1×1 viewport
// until the first Resize.
func NewSession(seed uint64) *Session {
	s := &Session{
		State: NewState(),
		Seeds: NewSeeds(seed),
	}
	s.Resize(1, 1)
	return s
}

// Resize recomputes the viewport metrics and reseeds body base positions.
func (s *Session) Resize(w, h float64) {
	s.Metrics = NewMetrics(w, h)
	s.State.Reseed(s.Metrics)
}

// SetReducedMotion switches reduced-motion mode. It takes effect on the next
// Step.
func (s *Session) SetReducedMotion(on bool) { s.reduced = on }

// ReducedMotion reports whether reduced-motion mode is on.
func (s *Session) ReducedMotion() bool { return s.reduced }

// InjectClick applies a click at local (x, y).
func (s *Session) InjectClick(x, y, now float64) {
	InjectClick(s.State, x, y, now, s.Metrics, s.reduced, s.Seeds)
}

// UpdatePointer records the pointer position in local coordinates. No force
// is applied here; Step derives hover from it.
func (s *Session) UpdatePointer(x, y float64, present bool) {
	s.Pointer.X = x
	s.Pointer.Y = y
	s.Pointer.Present = present
}

// Step advances the session by dt seconds at session time now.
func (s *Session) Step(dt, now float64) {
	Step(s.State, dt, now, s.Metrics, &s.Pointer, s.reduced, s.Seeds)
}

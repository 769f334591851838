package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDelta caps the seconds a single frame may advance the simulation.
const MaxDelta = 0.032

// Msg is a frame notification. Gen identifies the Start call that scheduled
// it; ticks from earlier generations are dropped.
type Msg struct {
	Gen uint64
	At  time.Time
}

// Tick is an accepted frame: DT is the clamped step, Now the session time in
// seconds.
type Tick struct {
	DT  float64
	Now float64
}

// Driver schedules frames on the bubbletea loop. Stop cancels by bumping the
// generation, so any tick already in flight is ignored when it arrives.
type Driver struct {
	interval time.Duration

	gen     uint64
	running bool

	last    time.Time
	elapsed float64
}

// NewDriver returns a stopped driver ticking at fps frames per second.
func NewDriver(fps int) *Driver {
	if fps <= 0 {
		fps = 60
	}
	return &Driver{interval: time.Second / time.Duration(fps)}
}

// Interval returns the frame period.
func (d *Driver) Interval() time.Duration { return d.interval }

// Running reports whether frames are being requested.
func (d *Driver) Running() bool { return d.running }

// Gen returns the current generation.
func (d *Driver) Gen() uint64 { return d.gen }

// Start begins a new generation and schedules its first frame. The first
// accepted tick has DT 0, so a resume never catches up the paused time.
func (d *Driver) Start() tea.Cmd {
	d.gen++
	d.running = true
	d.last = time.Time{}
	return d.Next()
}

// Stop cancels frame requests. Safe to call when already stopped.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.gen++
	d.running = false
}

// Next schedules the following frame of the current generation, or nil when
// stopped.
func (d *Driver) Next() tea.Cmd {
	if !d.running {
		return nil
	}
	gen := d.gen
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return Msg{Gen: gen, At: t}
	})
}

// Accept consumes a frame message. It reports false for ticks from a stopped
// or superseded generation.
func (d *Driver) Accept(m Msg) (Tick, bool) {
	if !d.running || m.Gen != d.gen {
		return Tick{}, false
	}
	var dt float64
	if !d.last.IsZero() {
		dt = ClampDelta(m.At.Sub(d.last).Seconds())
	}
	d.last = m.At
	d.elapsed += dt
	return Tick{DT: dt, Now: d.elapsed}, true
}

// Now returns the session time at wall time t, for input events that land
// between frames.
func (d *Driver) Now(t time.Time) float64 {
	if !d.running || d.last.IsZero() {
		return d.elapsed
	}
	return d.elapsed + ClampDelta(t.Sub(d.last).Seconds())
}

// Elapsed returns the session time of the last accepted frame.
func (d *Driver) Elapsed() float64 { return d.elapsed }

// ClampDelta bounds a raw frame delta to [0, MaxDelta]. NaN maps to 0.
func ClampDelta(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

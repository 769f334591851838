package main

import (
	"math"
	"time"

	"github.com/olivier-w/goo/internal/render"
	"github.com/olivier-w/goo/internal/scene"
	"github.com/olivier-w/goo/internal/sim"
)

const (
	snapshotStep    = 1.0 / 60
	snapshotClickAt = 0.25
)

type snapshotOptions struct {
	seed    uint64
	dot     float64
	reduced bool
	palette render.Palette
	cols    int
	rows    int
}

// snapshot runs a session on a synthetic clock for d, with one click at the
// center, and returns a single no-colour frame.
func snapshot(o snapshotOptions, d time.Duration) string {
	r := render.NewRenderer(render.NoColor, o.palette, o.dot)
	r.Resize(o.cols, o.rows)

	s := sim.NewSession(o.seed)
	s.SetReducedMotion(o.reduced)
	s.Resize(r.Viewport())

	frames := int(math.Round(d.Seconds() / snapshotStep))
	clicked := false
	var now float64
	for i := 1; i <= frames; i++ {
		if !clicked && now >= snapshotClickAt {
			s.InjectClick(0, 0, now)
			clicked = true
		}
		now = float64(i) * snapshotStep
		s.Step(snapshotStep, now)
	}

	var f scene.Frame
	scene.Project(s.State, s.Metrics, now, &f)
	f.Apply(r.Surface())
	return r.Render()
}

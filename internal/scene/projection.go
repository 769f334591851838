package scene

import (
	"math"

	"github.com/olivier-w/goo/internal/sim"
	"github.com/olivier-w/goo/internal/util"
)

// TrailDots is the number of visual trail elements. They stride through the
// trail history, so a few dots stand in for every sample.
const TrailDots = 10

const (
	trailStride = 4
	trailLife   = 1.2

	beigeRadius  = 86.0
	yellowRadius = 98.0
	ringSize     = 120.0
	breathSize   = 160.0
	trailSize    = 22.0

	breathPeriod = 3.6
	// groupScaleShare is how much of the group scale each blob inherits.
	groupScaleShare = 0.35
)

var blobRadii = [sim.BlobCount]float64{110, 92, 72}

// Transform places one element box on the surface. TranslateX/Y is the box's
// top-left corner, Width/Height its unscaled size; scaling is about the box
// center.
type Transform struct {
	TranslateX, TranslateY float64
	Width, Height          float64
	ScaleX, ScaleY         float64
	Opacity                float64
}

// Center returns the box center on the surface.
func (t Transform) Center() (float64, float64) {
	return t.TranslateX + t.Width/2, t.TranslateY + t.Height/2
}

// Visible reports whether the element contributes anything to the frame.
func (t Transform) Visible() bool {
	return t.Opacity > 0 && t.Width > 0 && t.ScaleX != 0 && t.ScaleY != 0
}

// Frame is the projected visual state of one simulation frame.
type Frame struct {
	Beige     Transform
	Blobs     [sim.BlobCount]Transform
	Yellow    Transform
	RingOuter Transform
	RingInner Transform
	Breath    Transform
	Trail     [TrailDots]Transform
	Particles [sim.ParticleCount]Transform

	// Field and Flash are clamped to [0, 1] for ambient background effects.
	Field float64
	Flash float64
}

// Project computes f from the simulation state. It only reads st.
func Project(st *sim.State, m sim.Metrics, now float64, f *Frame) {
	scale := m.Scale

	f.Field = util.Clamp(st.Field, 0, 1)
	f.Flash = util.Clamp(st.Flash, 0, 1)

	f.Beige = disc(m, st.Beige.X, st.Beige.Y, beigeRadius*scale, st.Beige.S, st.Beige.S)
	for i := range st.Blobs {
		b := &st.Blobs[i]
		sx := b.SX * util.Lerp(1, st.Green.SX, groupScaleShare)
		sy := b.SY * util.Lerp(1, st.Green.SY, groupScaleShare)
		f.Blobs[i] = disc(m, b.X, b.Y, blobRadii[i]*scale, sx, sy)
	}
	f.Yellow = disc(m, st.Yellow.X, st.Yellow.Y, yellowRadius*scale, st.Yellow.S, st.Yellow.S)

	since := st.Click.Since(now)
	f.RingOuter = clickRing(m, st.Click, since, now, ringWindow{
		start: 0.10, from: 0.55, to: 2.65, ease: util.EaseOutExpo,
		fx: 4, px: 0, ax: 0.08, fy: 3, py: 0, ay: 0.10,
	})
	f.RingInner = clickRing(m, st.Click, since, now, ringWindow{
		start: 0.14, from: 0.45, to: 2.25, ease: util.EaseOutCubic,
		fx: 5, px: 1.2, ax: 0.05, fy: 4, py: 0.4, ay: 0.07,
	})
	f.Breath = breathRing(m, now)

	projectTrail(st, m, now, f)
	projectParticles(st, m, f)
}

func disc(m sim.Metrics, x, y, r, sx, sy float64) Transform {
	return Transform{
		TranslateX: m.CX + x - r,
		TranslateY: m.CY + y - r,
		Width:      r * 2,
		Height:     r * 2,
		ScaleX:     sx,
		ScaleY:     sy,
		Opacity:    1,
	}
}

// centered returns a box of the given size centered on surface point (x, y).
func centered(x, y, size, sx, sy, opacity float64) Transform {
	return Transform{
		TranslateX: x - size/2,
		TranslateY: y - size/2,
		Width:      size,
		Height:     size,
		ScaleX:     sx,
		ScaleY:     sy,
		Opacity:    opacity,
	}
}

// ringWindow describes one click ring: it is visible for ringSpan seconds
// from start, grows from..to along ease, and wobbles its eccentricity with
// sinusoids of frequency f, phase p and amplitude a per axis.
type ringWindow struct {
	start    float64
	from, to float64
	ease     func(float64) float64

	fx, px, ax float64
	fy, py, ay float64
}

const ringSpan = 0.32

func clickRing(m sim.Metrics, c sim.Click, since, now float64, w ringWindow) Transform {
	size := ringSize * m.Scale
	if since < w.start || since > w.start+ringSpan {
		return centered(m.CX+c.X, m.CY+c.Y, size, 1, 1, 0)
	}
	p := (since - w.start) / ringSpan
	s := util.Lerp(w.from, w.to, w.ease(p))
	sx := s * (1 + math.Sin(now*w.fx+w.px)*w.ax)
	sy := s * (1 + math.Cos(now*w.fy+w.py)*w.ay)
	return centered(m.CX+c.X, m.CY+c.Y, size, sx, sy, util.Clamp(1-p, 0, 1))
}

// breathRing is the idle cue that pulses every breathPeriod seconds near the
// green/yellow overlap.
func breathRing(m sim.Metrics, now float64) Transform {
	p := math.Mod(now, breathPeriod) / breathPeriod
	if p < 0 {
		p += 1
	}
	s := util.Lerp(0.65, 1.65, util.EaseOutCubic(p))
	return centered(m.CX+70*m.Scale, m.CY+12*m.Scale, breathSize*m.Scale, s, s*0.92, (1-p)*0.22)
}

func projectTrail(st *sim.State, m sim.Metrics, now float64, f *Frame) {
	size := trailSize * m.Scale
	n := st.Trail.Len()
	for i := range f.Trail {
		f.Trail[i] = Transform{}
		if n == 0 {
			continue
		}
		h, _ := st.Trail.At(min(i*trailStride, n-1))
		age := now - h.T
		if age < 0 || age > trailLife {
			continue
		}
		fade := 1 - age/trailLife
		s := 0.55 + fade*0.55
		f.Trail[i] = centered(m.CX+h.X, m.CY+h.Y, size, s, s, fade*0.14*(0.5+f.Field*0.8))
	}
}

func projectParticles(st *sim.State, m sim.Metrics, f *Frame) {
	for i := range f.Particles {
		p := st.Particles.Slot(i)
		if !p.Active || p.Life <= 0 {
			f.Particles[i] = Transform{}
			continue
		}
		a := p.Age / p.Life
		s := 1 + a*0.6
		f.Particles[i] = centered(m.CX+p.X, m.CY+p.Y, p.Size, s, s, (1-a)*0.32)
	}
}

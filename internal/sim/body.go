package sim

import "github.com/olivier-w/goo/internal/util"

// Body is a point with non-uniform scale, each axis driven by its own spring.
type Body struct {
	X, Y     float64
	VX, VY   float64
	SX, SY   float64
	SVX, SVY float64
}

// Blob is one metaball of the green cluster.
type Blob struct {
	Body
	// Phase decorrelates the blob's wobble from its siblings.
	Phase float64
}

// Orb is a body with uniform scale (the yellow shape).
type Orb struct {
	X, Y   float64
	VX, VY float64
	S, SV  float64
}

// Anchor has no positional velocity: its position is relaxed directly toward
// a target and only its scale is sprung (the beige shape).
type Anchor struct {
	X, Y  float64
	S, SV float64
}

func newBody() Body {
	return Body{SX: 1, SY: 1}
}

// spring advances x toward target: a = (target-x)*k - v*d.
func spring(x, v *float64, target, k, d, dt float64) {
	a := (target-*x)*k - *v*d
	*v += a * dt
	*x += *v * dt
}

func (b *Body) springPos(tx, ty, k, d, dt float64) {
	spring(&b.X, &b.VX, tx, k, d, dt)
	spring(&b.Y, &b.VY, ty, k, d, dt)
	b.X, b.VX = settle(b.X, b.VX)
	b.Y, b.VY = settle(b.Y, b.VY)
}

func (b *Body) springScale(tsx, tsy, k, d, dt float64) {
	spring(&b.SX, &b.SVX, tsx, k, d, dt)
	spring(&b.SY, &b.SVY, tsy, k, d, dt)
	b.SX, b.SVX = boundScale(b.SX, b.SVX)
	b.SY, b.SVY = boundScale(b.SY, b.SVY)
}

func (o *Orb) springPos(tx, ty, k, d, dt float64) {
	spring(&o.X, &o.VX, tx, k, d, dt)
	spring(&o.Y, &o.VY, ty, k, d, dt)
	o.X, o.VX = settle(o.X, o.VX)
	o.Y, o.VY = settle(o.Y, o.VY)
}

func (o *Orb) springScale(ts, k, d, dt float64) {
	spring(&o.S, &o.SV, ts, k, d, dt)
	o.S, o.SV = boundScale(o.S, o.SV)
}

func (a *Anchor) springScale(ts, k, d, dt float64) {
	spring(&a.S, &a.SV, ts, k, d, dt)
	a.S, a.SV = boundScale(a.S, a.SV)
}

// settle resets a coordinate that went non-finite.
func settle(x, v float64) (float64, float64) {
	return util.Finite(x, 0), util.Finite(v, 0)
}

// boundScale keeps a scale inside [minBodyScale, maxBodyScale]. Velocity
// pushing further out of range is dropped so the spring recovers at once.
func boundScale(s, v float64) (float64, float64) {
	s = util.Finite(s, 1)
	v = util.Finite(v, 0)
	switch {
	case s < minBodyScale:
		s = minBodyScale
		if v < 0 {
			v = 0
		}
	case s > maxBodyScale:
		s = maxBodyScale
		if v > 0 {
			v = 0
		}
	}
	return s, v
}

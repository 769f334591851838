package sim

import (
	"math"

	"github.com/olivier-w/goo/internal/util"
)

// Step advances the simulation by dt seconds. now is the session time in
// seconds; it drives every periodic term, so Step is deterministic for a
// given (state, dt, now, inputs). dt is clamped to [0, MaxStep].
func Step(s *State, dt, now float64, m Metrics, p *Pointer, reduced bool, seeds Seeds) {
	dt = util.Clamp(util.Finite(dt, 0), 0, MaxStep)
	scale := m.Scale
	since := s.Click.Since(now)

	decayTimers(s, dt)
	updateHover(s, p, dt, scale)

	idleMul := 1.0
	if reduced {
		idleMul = 0.35
	}
	fieldMul := 1 + s.Field*0.55*idleMul

	// Group center.
	driftX := math.Sin(now*0.12+seeds.DriftA) * 10 * scale
	driftY := math.Cos(now*0.10+seeds.DriftB) * 8 * scale
	ax, ay := attraction(s, s.Green.X, s.Green.Y, 420*scale, 28*scale)

	targetX := driftX*idleMul + p.HoverVX*0.55 + ax*fieldMul
	targetY := driftY*idleMul + p.HoverVY*0.55 + ay*fieldMul
	s.Green.springPos(targetX, targetY, greenK, greenD, dt)

	breath := 1 + math.Sin(now*1.0+seeds.WobA)*(0.012*idleMul)*fieldMul
	jelly := math.Sin(now*1.7+seeds.WobB) * (0.008 * idleMul) * fieldMul
	snapSX, snapSY := snapScale(since, reduced)
	s.Green.springScale(
		breath*(1+jelly*0.5)*snapSX,
		breath*(1-jelly*0.4)*snapSY,
		greenScaleK, greenScaleD, dt)

	stepBlobs(s, dt, now, since, scale, idleMul, fieldMul, snapSX, snapSY, reduced, seeds)
	stepYellow(s, p, dt, now, scale, idleMul, seeds)
	stepBeige(s, dt, now, scale, idleMul, seeds)

	stepTrail(s, dt, now, reduced)

	if reduced {
		s.Particles.Kill()
	} else {
		s.Particles.update(dt, particleFloat*scale)
	}
}

// decayTimers relaxes flash and walks the field down its squared ramp, then
// exponentially clears whatever is left.
func decayTimers(s *State, dt float64) {
	s.Flash = util.Approach(s.Flash, 0, flashRate, dt)
	if s.FieldTimer > 0 {
		s.FieldTimer -= dt
		x := util.Clamp(s.FieldTimer/FieldWindow, 0, 1)
		s.Field = x * x
	} else {
		s.Field = util.Approach(s.Field, 0, fieldRelax, dt)
	}
}

// HoverLevel maps pointer distance to hover intensity: 1 inside the inner
// radius, linear across the band, 0 beyond the outer radius.
func HoverLevel(dist, scale float64) float64 {
	inner := hoverInner * scale
	outer := hoverOuter * scale
	switch {
	case dist < inner:
		return 1
	case dist < outer:
		return (outer - dist) / (outer - inner)
	default:
		return 0
	}
}

func updateHover(s *State, p *Pointer, dt, scale float64) {
	target := 0.0
	if p.Present {
		dG := util.VecLen(p.X-s.Green.X, p.Y-s.Green.Y)
		dY := util.VecLen(p.X-s.Yellow.X, p.Y-s.Yellow.Y)
		target = HoverLevel(min(dG, dY), scale)
	}
	p.Hover = util.Approach(p.Hover, target, hoverRate, dt)

	tx, ty := 0.0, 0.0
	if p.Hover > 0.001 && p.Present {
		nx, ny := util.NormVec(p.X-s.Green.X, p.Y-s.Green.Y)
		amp := hoverAmp * scale * p.Hover
		tx, ty = nx*amp, ny*amp
	}
	p.HoverVX = util.Approach(p.HoverVX, tx, hoverRate, dt)
	p.HoverVY = util.Approach(p.HoverVY, ty, hoverRate, dt)
}

// attraction is the field-scaled pull from (x, y) toward the last click.
func attraction(s *State, x, y, reach, strength float64) (float64, float64) {
	if s.Field <= 0.0001 || !s.Click.Seen {
		return 0, 0
	}
	dx, dy := s.Click.X-x, s.Click.Y-y
	nx, ny := util.NormVec(dx, dy)
	falloff := 1 / (1 + util.VecLen(dx, dy)/reach)
	f := strength * s.Field * falloff
	return nx * f, ny * f
}

// snapScale returns the click squash/stretch multipliers for the group.
func snapScale(since float64, reduced bool) (float64, float64) {
	snap := 0.0
	if since >= 0 && since < 0.18 {
		snap = math.Exp(-since / 0.09)
	}
	osc := 0.0
	if since >= 0 && since < 0.45 {
		osc = math.Cos(since*18) * math.Exp(-since*4.2)
	}
	if reduced {
		return 1 - 0.04*snap + 0.02*osc, 1 + 0.05*snap - 0.02*osc
	}
	return 1 - 0.09*snap + 0.04*osc, 1 + 0.12*snap - 0.05*osc
}

func stepBlobs(s *State, dt, now, since, scale, idleMul, fieldMul, snapSX, snapSY float64, reduced bool, seeds Seeds) {
	amp := scale * idleMul * fieldMul

	ringKick := 0.0
	if !reduced && since >= 0.12 && since <= 0.45 {
		ringKick = math.Sin((since - 0.12) / 0.33 * math.Pi)
	}

	for i := range s.Blobs {
		b := &s.Blobs[i]
		fi := float64(i)
		ph := b.Phase

		wob1 := math.Sin(now*(1.9+fi*0.2)+seeds.WobA+ph) * 14 * amp
		wob2 := math.Cos(now*(1.4+fi*0.15)+seeds.WobC+ph*1.3) * 11 * amp
		wob3 := math.Sin(now*(2.6+fi*0.21)+seeds.WobB+ph*0.7) * 8 * amp

		o := BlobOffset(i, scale)
		tx := s.Green.X + o.X + wob1 + wob3*0.6 + (fi-1)*2.5*scale*ringKick
		ty := s.Green.Y + o.Y + wob2 - wob3*0.4 + (1-fi)*2.5*scale*ringKick
		b.springPos(tx, ty, blobK, blobD, dt)

		breath := 1 + math.Sin(now*2.1+seeds.WobC+ph)*(0.012*idleMul)*fieldMul
		jit := 0.0
		if !reduced && since >= 0 && since < 0.8 {
			jit = math.Cos((since+fi*0.07)*22) * math.Exp(-since*3.5) * 0.035
		}
		b.springScale(
			breath*(1+jit)*util.Lerp(1, snapSX, 0.25),
			breath*(1-jit*0.8)*util.Lerp(1, snapSY, 0.25),
			blobScaleK, blobScaleD, dt)
	}
}

func stepYellow(s *State, p *Pointer, dt, now, scale, idleMul float64, seeds Seeds) {
	driftX := math.Sin(now*0.11+seeds.DriftB) * 6 * scale * idleMul
	driftY := math.Cos(now*0.09+seeds.DriftA) * 5 * scale * idleMul
	ax, ay := attraction(s, s.Yellow.X, s.Yellow.Y, 520*scale, 16*scale)

	tx := yellowBaseX*scale + driftX + ax + p.HoverVX*0.12
	ty := driftY + ay + p.HoverVY*0.12
	s.Yellow.springPos(tx, ty, yellowK, yellowD, dt)

	breath := 1 + math.Sin(now*0.9+seeds.WobA)*(0.0065*idleMul)*(1+s.Field*0.25)
	s.Yellow.springScale(breath, yellowScaleK, yellowScaleD, dt)
}

func stepBeige(s *State, dt, now, scale, idleMul float64, seeds Seeds) {
	s.Beige.X = util.Approach(s.Beige.X, beigeBaseX*scale, beigeRelax, dt)
	s.Beige.Y = util.Approach(s.Beige.Y, beigeBaseY*scale, beigeRelax, dt)
	breath := 1 + math.Sin(now*0.8+seeds.WobB)*(0.0045*idleMul)
	s.Beige.springScale(breath, beigeScaleK, beigeScaleD, dt)
}

// stepTrail appends a group sample every TrailInterval. Reduced motion keeps
// the history empty.
func stepTrail(s *State, dt, now float64, reduced bool) {
	if reduced {
		s.Trail.Clear()
		s.trailAcc = 0
		return
	}
	s.trailAcc += dt
	if s.trailAcc >= TrailInterval {
		s.trailAcc = 0
		s.Trail.Push(TrailSample{X: s.Green.X, Y: s.Green.Y, T: now})
	}
}

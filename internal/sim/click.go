package sim

import (
	"math"

	"github.com/olivier-w/goo/internal/util"
)

// InjectClick records a click at local (x, y) and applies its one-shot
// impulses. Only the latest click's timers are kept; impulses from earlier
// clicks stay in the bodies' velocities.
func InjectClick(s *State, x, y, now float64, m Metrics, reduced bool, seeds Seeds) {
	scale := m.Scale

	s.Click = Click{At: now, X: x, Y: y, Seen: true}
	s.Flash = 1
	s.Field = 1
	s.FieldTimer = FieldWindow

	// Group center is pushed away from the click.
	nx, ny := util.NormVec(s.Green.X-x, s.Green.Y-y)
	kick := (220 + 120*seeds.Rand.Float(siteKick, now, 0)) * scale
	s.Green.VX += nx * kick
	s.Green.VY += ny * kick
	s.Green.SVX += -1.2
	s.Green.SVY += 1.4

	for i := range s.Blobs {
		b := &s.Blobs[i]
		rx, ry := b.X-x, b.Y-y
		dist := util.VecLen(rx, ry)
		rnx, rny := util.NormVec(rx, ry)
		falloff := 1 / (1 + dist/(220*scale))
		blobKick := (260*falloff + 40) * scale
		b.VX += rnx*blobKick + seeds.Rand.Signed(siteBlobX, now, i)*80*scale
		b.VY += rny*blobKick + seeds.Rand.Signed(siteBlobY, now, i)*80*scale
		b.SVX += -1.1 - 0.15*float64(i)
		b.SVY += 1.2 + 0.12*float64(i)
	}

	// Yellow is heavier and takes a fraction of the kick.
	ynx, yny := util.NormVec(s.Yellow.X-x, s.Yellow.Y-y)
	s.Yellow.VX += ynx * kick * 0.32
	s.Yellow.VY += yny * kick * 0.32
	s.Yellow.SV += 0.22

	s.Beige.SV += 0.10

	if !reduced {
		spawnBurst(s, x, y, now, scale, seeds)
	}
}

// spawnBurst claims 8..11 free particle slots in a ring around (x, y).
func spawnBurst(s *State, x, y, now, scale float64, seeds Seeds) int {
	r := seeds.Rand
	count := 8 + int(r.Float(siteBurst, now, 0)*4)
	return s.Particles.Spawn(count, func(i int, p *Particle) {
		p.Life = 0.55 + r.Float(siteLife, now, i)*0.35
		a := r.Float(siteAngle, now, i) * math.Pi * 2
		rad := (6 + r.Float(siteRadius, now, i)*18) * scale
		p.X = x + math.Cos(a)*rad
		p.Y = y + math.Sin(a)*rad
		sp := (40 + r.Float(siteSpeed, now, i)*120) * scale
		p.VX = math.Cos(a)*sp + r.Signed(siteDriftX, 0, i)*30*scale
		p.VY = math.Sin(a)*sp + r.Signed(siteDriftY, 0, i)*30*scale
		p.Size = 1.6 + r.Float(siteSize, now, i)*2.6
	})
}

package sim

import "math"

// Particle is one pooled burst fragment.
type Particle struct {
	Active bool
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Size   float64
}

// Pool is a fixed slot table of particles. Acquire scans for the first
// inactive slot; release clears the flag. The pool never grows.
type Pool struct {
	slots [ParticleCount]Particle
}

// Slot returns a pointer to slot i.
func (p *Pool) Slot(i int) *Particle {
	return &p.slots[i]
}

// Len returns the pool capacity.
func (p *Pool) Len() int { return ParticleCount }

// ActiveCount returns the number of live particles.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Spawn activates up to n free slots, calling init with the slot index so
// the caller can assign kinematics. It returns how many were spawned, which
// is less than n when the pool runs out of free slots.
func (p *Pool) Spawn(n int, init func(slot int, pt *Particle)) int {
	spawned := 0
	for i := range p.slots {
		if spawned >= n {
			break
		}
		pt := &p.slots[i]
		if pt.Active {
			continue
		}
		*pt = Particle{Active: true}
		init(i, pt)
		spawned++
	}
	return spawned
}

// Kill deactivates every particle.
func (p *Pool) Kill() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
}

// update ages, damps and moves every live particle. float is the upward
// drift acceleration in pixels/s².
func (p *Pool) update(dt, float float64) {
	drag := math.Exp(-dt * particleDrag)
	for i := range p.slots {
		pt := &p.slots[i]
		if !pt.Active {
			continue
		}
		pt.Age += dt
		if pt.Age >= pt.Life {
			pt.Active = false
			continue
		}
		pt.VX *= drag
		pt.VY *= drag
		pt.VY -= float * dt
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
	}
}

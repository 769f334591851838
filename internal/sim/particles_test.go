package sim

import "testing"

func TestPoolSpawnRespectsFreeSlots(t *testing.T) {
	var p Pool
	noop := func(int, *Particle) {}

	if got := p.Spawn(11, func(_ int, pt *Particle) { pt.Life = 1 }); got != 11 {
		t.Fatalf("expected 11 spawned, got %d", got)
	}
	if got := p.Spawn(11, noop); got != ParticleCount-11 {
		t.Fatalf("expected only %d free slots to be claimed, got %d", ParticleCount-11, got)
	}
	if p.ActiveCount() != ParticleCount {
		t.Fatalf("expected full pool, got %d", p.ActiveCount())
	}
	if got := p.Spawn(5, noop); got != 0 {
		t.Fatalf("expected no spawn into a full pool, got %d", got)
	}
}

func TestPoolReleasesExpiredSlots(t *testing.T) {
	var p Pool
	p.Spawn(4, func(i int, pt *Particle) {
		pt.Life = 0.1 * float64(i+1)
	})
	for range 8 {
		p.update(1.0/60, 0)
	}
	// 8/60 ≈ 0.133s: only the 0.1s particle has expired.
	if got := p.ActiveCount(); got != 3 {
		t.Fatalf("expected 3 live particles, got %d", got)
	}
	if p.Slot(0).Active {
		t.Fatal("expected the shortest-lived slot to be released")
	}

	// The freed slot is reused first.
	reused := -1
	p.Spawn(1, func(i int, pt *Particle) { reused = i; pt.Life = 1 })
	if reused != 0 {
		t.Fatalf("expected slot 0 to be reused, got %d", reused)
	}
}

func TestPoolUpdateDampsAndFloats(t *testing.T) {
	var p Pool
	p.Spawn(1, func(_ int, pt *Particle) {
		pt.Life = 1
		pt.VX = 100
	})
	p.update(0.016, 14)
	pt := p.Slot(0)
	if pt.VX >= 100 || pt.VX <= 0 {
		t.Fatalf("expected damped positive velocity, got %v", pt.VX)
	}
	if pt.VY >= 0 {
		t.Fatalf("expected upward drift (negative vy), got %v", pt.VY)
	}
	if pt.X <= 0 {
		t.Fatalf("expected particle to move, got x=%v", pt.X)
	}
}

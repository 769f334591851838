package render

import (
	"github.com/olivier-w/goo/internal/scene"
	"github.com/olivier-w/goo/internal/sim"
)

// element is a mounted visual. It keeps the last transform written to it.
type element struct {
	t scene.Transform
}

func (e *element) Apply(t scene.Transform) { e.t = t }

// Surface is the terminal scene graph the projection writes into. Elements
// are unmounted until the first Resize, and Target reports nil for them.
type Surface struct {
	mounted bool

	beige     element
	blobs     [sim.BlobCount]element
	yellow    element
	ringOuter element
	ringInner element
	breath    element
	trail     [scene.TrailDots]element
	particles [sim.ParticleCount]element

	field float64
	flash float64
}

// Target implements scene.Surface.
func (s *Surface) Target(k scene.Kind, i int) scene.Target {
	if !s.mounted {
		return nil
	}
	var e *element
	switch k {
	case scene.KindBeige:
		e = single(&s.beige, i)
	case scene.KindBlob:
		e = pick(s.blobs[:], i)
	case scene.KindYellow:
		e = single(&s.yellow, i)
	case scene.KindRingOuter:
		e = single(&s.ringOuter, i)
	case scene.KindRingInner:
		e = single(&s.ringInner, i)
	case scene.KindBreathRing:
		e = single(&s.breath, i)
	case scene.KindTrail:
		e = pick(s.trail[:], i)
	case scene.KindParticle:
		e = pick(s.particles[:], i)
	}
	if e == nil {
		return nil
	}
	return e
}

// SetVar implements scene.Surface.
func (s *Surface) SetVar(name string, v float64) {
	switch name {
	case scene.VarField:
		s.field = v
	case scene.VarFlash:
		s.flash = v
	}
}

func single(e *element, i int) *element {
	if i != 0 {
		return nil
	}
	return e
}

func pick(es []element, i int) *element {
	if i < 0 || i >= len(es) {
		return nil
	}
	return &es[i]
}

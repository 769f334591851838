package scene

// Kind identifies a visual element class.
type Kind uint8

const (
	KindBeige Kind = iota
	KindBlob
	KindYellow
	KindRingOuter
	KindRingInner
	KindBreathRing
	KindTrail
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindBeige:
		return "beige"
	case KindBlob:
		return "blob"
	case KindYellow:
		return "yellow"
	case KindRingOuter:
		return "ring-outer"
	case KindRingInner:
		return "ring-inner"
	case KindBreathRing:
		return "breath-ring"
	case KindTrail:
		return "trail"
	case KindParticle:
		return "particle"
	}
	return "unknown"
}

// Variable names published alongside the transforms.
const (
	VarField = "field"
	VarFlash = "flash"
)

// Target receives the transform of one element.
type Target interface {
	Apply(Transform)
}

// Surface is the render layer the frame is written to. Target returns nil
// for elements that are not mounted; those are skipped for the frame.
type Surface interface {
	Target(k Kind, index int) Target
	SetVar(name string, v float64)
}

// Apply writes every transform of f to s. A missing target never stops the
// remaining elements from being written.
func (f *Frame) Apply(s Surface) {
	s.SetVar(VarField, f.Field)
	s.SetVar(VarFlash, f.Flash)

	put := func(k Kind, i int, t Transform) {
		if tg := s.Target(k, i); tg != nil {
			tg.Apply(t)
		}
	}

	put(KindBeige, 0, f.Beige)
	for i, t := range f.Blobs {
		put(KindBlob, i, t)
	}
	put(KindYellow, 0, f.Yellow)
	put(KindRingOuter, 0, f.RingOuter)
	put(KindRingInner, 0, f.RingInner)
	put(KindBreathRing, 0, f.Breath)
	for i, t := range f.Trail {
		put(KindTrail, i, t)
	}
	for i, t := range f.Particles {
		put(KindParticle, i, t)
	}
}

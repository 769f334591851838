package scene

import "testing"

type recordTarget struct {
	got []Transform
}

func (r *recordTarget) Apply(t Transform) { r.got = append(r.got, t) }

type partialSurface struct {
	targets map[Kind][]*recordTarget
	vars    map[string]float64
}

func (s *partialSurface) Target(k Kind, i int) Target {
	ts := s.targets[k]
	if i >= len(ts) || ts[i] == nil {
		return nil
	}
	return ts[i]
}

func (s *partialSurface) SetVar(name string, v float64) { s.vars[name] = v }

func TestApplySkipsMissingTargets(t *testing.T) {
	blob0, blob2 := &recordTarget{}, &recordTarget{}
	particle := &recordTarget{}
	s := &partialSurface{
		targets: map[Kind][]*recordTarget{
			KindBlob:     {blob0, nil, blob2},
			KindParticle: {particle},
		},
		vars: map[string]float64{},
	}

	var f Frame
	f.Field, f.Flash = 0.5, 0.25
	f.Blobs[2].Opacity = 1
	f.Apply(s)

	if len(blob0.got) != 1 || len(blob2.got) != 1 {
		t.Fatalf("mounted blobs not written: %d %d", len(blob0.got), len(blob2.got))
	}
	if blob2.got[0].Opacity != 1 {
		t.Fatalf("blob 2 got wrong transform: %+v", blob2.got[0])
	}
	if len(particle.got) != 1 {
		t.Fatalf("particle 0 not written")
	}
	if s.vars[VarField] != 0.5 || s.vars[VarFlash] != 0.25 {
		t.Fatalf("vars = %v", s.vars)
	}
}

func TestApplyWithNoTargets(t *testing.T) {
	s := &partialSurface{vars: map[string]float64{}}
	var f Frame
	f.Apply(s)
	if _, ok := s.vars[VarField]; !ok {
		t.Fatalf("vars not published when no targets are mounted")
	}
}

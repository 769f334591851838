package util

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{3, 0, 1, 1},
		{0.04, 0, 0.032, 0.032},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]func(float64) float64{
		"cubic": EaseOutCubic,
		"expo":  EaseOutExpo,
	} {
		if got := ease(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := ease(2); got != 1 {
			t.Errorf("%s(2) = %v, want clamped 1", name, got)
		}
		prev := -1.0
		for i := 0; i <= 20; i++ {
			v := ease(float64(i) / 20)
			if v < prev {
				t.Fatalf("%s not monotonic at step %d", name, i)
			}
			prev = v
		}
	}
}

func TestNormVecZeroFallsBackToUnitX(t *testing.T) {
	x, y := NormVec(0, 0)
	if x != 1 || y != 0 {
		t.Fatalf("NormVec(0, 0) = (%v, %v), want (1, 0)", x, y)
	}

	x, y = NormVec(3, 4)
	if math.Abs(x-0.6) > 1e-12 || math.Abs(y-0.8) > 1e-12 {
		t.Fatalf("NormVec(3, 4) = (%v, %v)", x, y)
	}
	if l := VecLen(x, y); math.Abs(l-1) > 1e-12 {
		t.Fatalf("expected unit length, got %v", l)
	}
}

func TestApproachConvergesWithoutOvershoot(t *testing.T) {
	v := 1.0
	for range 120 {
		v = Approach(v, 0, 12, 1.0/60)
		if v < 0 {
			t.Fatalf("approach overshot: %v", v)
		}
	}
	if v > 1e-5 {
		t.Fatalf("expected approach to settle, got %v", v)
	}
}

func TestFinite(t *testing.T) {
	if got := Finite(math.NaN(), 2); got != 2 {
		t.Fatalf("Finite(NaN) = %v", got)
	}
	if got := Finite(math.Inf(-1), 0); got != 0 {
		t.Fatalf("Finite(-Inf) = %v", got)
	}
	if got := Finite(1.5, 0); got != 1.5 {
		t.Fatalf("Finite(1.5) = %v", got)
	}
}

package util

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves v toward target with exponential smoothing at the given
// rate (1/s). Frame-rate independent for a fixed rate.
func Approach(v, target, rate, dt float64) float64 {
	return Lerp(v, target, 1-math.Exp(-dt*rate))
}

// EaseOutCubic is 1-(1-t)³ with t clamped to [0, 1].
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutExpo is 1-2^(-10t) with t clamped to [0, 1]; exactly 1 at t=1.
func EaseOutExpo(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// VecLen returns the length of (x, y).
func VecLen(x, y float64) float64 {
	return math.Hypot(x, y)
}

// NormVec returns the unit vector along (x, y). A zero-length vector
// yields (1, 0).
func NormVec(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) {
		return 1, 0
	}
	return x / l, y / l
}

// Finite replaces NaN and ±Inf with fallback.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

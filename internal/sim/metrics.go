package sim

import "github.com/olivier-w/goo/internal/util"

// Metrics describes the viewport in surface pixels.
type Metrics struct {
	W, H   float64
	CX, CY float64
	// Scale normalizes every distance and velocity constant: the shorter
	// side over ReferenceSize, clamped to [MinScale, MaxScale].
	Scale float64
}

// NewMetrics computes metrics for a w×h viewport. Non-positive sizes are
// treated as 1.
func NewMetrics(w, h float64) Metrics {
	if !(w > 0) {
		w = 1
	}
	if !(h > 0) {
		h = 1
	}
	return Metrics{
		W:     w,
		H:     h,
		CX:    w * 0.5,
		CY:    h * 0.5,
		Scale: util.Clamp(min(w, h)/ReferenceSize, MinScale, MaxScale),
	}
}

package sim

// TrailSample is a snapshot of the group center.
type TrailSample struct {
	X, Y float64
	// T is the session time the sample was captured at.
	T float64
}

// Trail is a fixed-capacity circular history of group positions. Pushing
// onto a full trail overwrites the oldest sample; it never allocates.
type Trail struct {
	buf [TrailCap]TrailSample
	w   int // next write position
	len int // current fill level
}

// Push records s as the most recent sample.
func (t *Trail) Push(s TrailSample) {
	t.buf[t.w] = s
	t.w = (t.w + 1) % TrailCap
	if t.len < TrailCap {
		t.len++
	}
}

// Len returns the number of stored samples.
func (t *Trail) Len() int { return t.len }

// At returns the i-th most recent sample (0 is the newest).
func (t *Trail) At(i int) (TrailSample, bool) {
	if i < 0 || i >= t.len {
		return TrailSample{}, false
	}
	idx := (t.w - 1 - i + TrailCap) % TrailCap
	return t.buf[idx], true
}

// Clear drops every sample.
func (t *Trail) Clear() {
	t.w = 0
	t.len = 0
}

package audio

import "math"

// Pop synthesizes the built-in click cue: a short downward chirp with a fast
// attack and exponential decay, silent at both ends.
func Pop() []byte {
	const (
		dur     = 0.09
		attack  = 0.003
		release = 0.005
		decay   = 0.025
		f0      = 900.0
		f1      = 260.0
		amp     = 0.6
	)
	n := int(dur * SampleRate)
	c := &clip{rate: SampleRate, channels: 1, samples: make([]float32, n)}
	phase := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		freq := f0 * math.Pow(f1/f0, t/dur)
		phase += 2 * math.Pi * freq / SampleRate

		env := math.Exp(-t / decay)
		if t < attack {
			env *= t / attack
		}
		if rem := dur - t; rem < release {
			env *= rem / release
		}
		c.samples[i] = float32(amp * env * math.Sin(phase))
	}
	return c.toPCM()
}

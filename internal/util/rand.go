package util

import (
	"math"
	"math/rand/v2"
)

// Rand is a keyed pseudo-random source. It holds no stream state: every
// value is derived from the seed and the key passed to Float, so the same
// (seed, key) always yields the same number regardless of call order.
type Rand struct {
	seed uint64
}

// NewRand returns a keyed source for seed.
func NewRand(seed uint64) Rand {
	return Rand{seed: seed}
}

// Seed reports the seed the source was created with.
func (r Rand) Seed() uint64 { return r.seed }

// Float returns a value in [0, 1) for the given call site, timestamp and
// index.
func (r Rand) Float(site uint64, t float64, i int) float64 {
	key := mix(site ^ mix(math.Float64bits(t)) ^ mix(uint64(i)+0x632be59bd9b4e019))
	pcg := rand.NewPCG(r.seed, key)
	return float64(pcg.Uint64()>>11) / (1 << 53)
}

// Signed returns a value in [-0.5, 0.5).
func (r Rand) Signed(site uint64, t float64, i int) float64 {
	return r.Float(site, t, i) - 0.5
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

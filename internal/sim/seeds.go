package sim

import "github.com/olivier-w/goo/internal/util"

// Call-site keys for the keyed random source.
const (
	siteBase uint64 = iota + 1
	siteKick
	siteBlobX
	siteBlobY
	siteBurst
	siteLife
	siteAngle
	siteRadius
	siteSpeed
	siteDriftX
	siteDriftY
	siteSize
)

// Seeds holds the per-session phase offsets and the keyed random source
// used for click jitter.
type Seeds struct {
	Rand util.Rand

	Base   float64
	DriftA float64
	DriftB float64
	WobA   float64
	WobB   float64
	WobC   float64
}

// NewSeeds derives every phase offset from seed.
func NewSeeds(seed uint64) Seeds {
	r := util.NewRand(seed)
	s := r.Float(siteBase, 0, 0) * 1000
	return Seeds{
		Rand:   r,
		Base:   s,
		DriftA: s + 11.23,
		DriftB: s + 97.11,
		WobA:   s + 3.7,
		WobB:   s + 19.9,
		WobC:   s + 71.4,
	}
}

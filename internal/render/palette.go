package render

import "github.com/lucasb-eyer/go-colorful"

// Palette holds the scene colours.
type Palette struct {
	Background colorful.Color
	Green      colorful.Color
	Yellow     colorful.Color
	Beige      colorful.Color
	Ring       colorful.Color
	Trail      colorful.Color
	Particle   colorful.Color
}

// Default hex colours, also used as config defaults.
const (
	DefaultBackground = "#0f110d"
	DefaultGreen      = "#2fbf71"
	DefaultYellow     = "#f2c94c"
	DefaultBeige      = "#e6dac3"
	DefaultRing       = "#f4f1e8"
	DefaultTrail      = "#8fe3b0"
	DefaultParticle   = "#fff4d6"
)

// DefaultPalette returns the built-in colours.
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex(DefaultBackground),
		Green:      mustHex(DefaultGreen),
		Yellow:     mustHex(DefaultYellow),
		Beige:      mustHex(DefaultBeige),
		Ring:       mustHex(DefaultRing),
		Trail:      mustHex(DefaultTrail),
		Particle:   mustHex(DefaultParticle),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

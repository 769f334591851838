package render

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Profile is the colour capability the output is encoded for.
type Profile uint8

const (
	NoColor Profile = iota // NO_COLOR or dumb terminal: ASCII ramp
	ANSI16
	ANSI256
	TrueColor
)

func (p Profile) String() string {
	switch p {
	case ANSI16:
		return "ansi16"
	case ANSI256:
		return "ansi256"
	case TrueColor:
		return "truecolor"
	}
	return "none"
}

var (
	detectOnce sync.Once
	detected   Profile
	seqCache   sync.Map
)

// DetectProfile inspects NO_COLOR, TERM and COLORTERM once per process.
func DetectProfile() Profile {
	detectOnce.Do(func() {
		detected = profileFromEnv(os.LookupEnv)
	})
	return detected
}

func profileFromEnv(lookup func(string) (string, bool)) Profile {
	if _, ok := lookup("NO_COLOR"); ok {
		return NoColor
	}
	term, _ := lookup("TERM")
	ct, _ := lookup("COLORTERM")
	term = strings.ToLower(term)
	ct = strings.ToLower(ct)
	switch {
	case strings.Contains(ct, "truecolor"), strings.Contains(ct, "24bit"):
		return TrueColor
	case strings.Contains(term, "256color"):
		return ANSI256
	case term == "dumb":
		return NoColor
	case term == "" && runtime.GOOS == "windows":
		return ANSI16
	case term == "":
		return NoColor
	}
	return ANSI16
}

const ansiReset = "\x1b[0m"

// ASCII brightness ramp from darkest to brightest.
const asciiRamp = " .:-=+*#%@"

// colorSeq returns the escape selecting c as foreground (bg false) or
// background colour. Sequences are cached per profile and colour.
func colorSeq(p Profile, c colorful.Color, bg bool) string {
	if p == NoColor {
		return ""
	}
	r, g, b := c.Clamped().RGB255()
	key := uint32(p)<<25 | uint32(boolBit(bg))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	layer := 38
	if bg {
		layer = 48
	}
	var seq string
	switch p {
	case TrueColor:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, r, g, b)
	case ANSI256:
		seq = fmt.Sprintf("\x1b[%d;5;%dm", layer, cube256(r, g, b))
	case ANSI16:
		idx := nearest16(r, g, b)
		base := 30
		if bg {
			base = 40
		}
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		seq = fmt.Sprintf("\x1b[%dm", base+idx)
	}
	seqCache.Store(key, seq)
	return seq
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func cube256(r, g, b uint8) int {
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return 16 + 36*ri + 6*gi + bi
}

func nearest16(r, g, b uint8) int {
	best := 0
	bestDist := 1<<31 - 1
	for i, c := range ansi16Palette {
		dr := int(r) - int(c[0])
		dg := int(g) - int(c[1])
		db := int(b) - int(c[2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

var ansi16Palette = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// brightnessChar maps a colour to the ASCII ramp by BT.601 luminance.
func brightnessChar(c colorful.Color) byte {
	r, g, b := c.Clamped().RGB255()
	lum := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
	return asciiRamp[lum*(len(asciiRamp)-1)/255]
}

// Package audio plays the click cue.
package audio

import (
	"encoding/binary"
	"math"
)

// Output format shared by every cue.
const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = ChannelCount * 2

	// maxClip bounds how much of a sample file is kept.
	maxClip = 2.0
)

// clip is decoded audio as interleaved float samples in [-1, 1].
type clip struct {
	rate     int
	channels int
	samples  []float32
}

func (c *clip) frames() int {
	if c.channels <= 0 {
		return 0
	}
	return len(c.samples) / c.channels
}

// full reports whether the clip already holds maxClip seconds.
func (c *clip) full() bool {
	return c.rate > 0 && float64(c.frames()) >= maxClip*float64(c.rate)
}

// at returns channel ch of frame i, folding extra channels onto stereo.
func (c *clip) at(i, ch int) float64 {
	if c.channels == 1 {
		return float64(c.samples[i])
	}
	return float64(c.samples[i*c.channels+min(ch, c.channels-1)])
}

// toPCM resamples the clip to SampleRate stereo signed 16-bit little endian
// by linear interpolation.
func (c *clip) toPCM() []byte {
	n := c.frames()
	if n == 0 || c.rate <= 0 {
		return nil
	}
	out := int(float64(n) * SampleRate / float64(c.rate))
	out = min(out, int(maxClip*SampleRate))
	pcm := make([]byte, out*frameBytes)
	step := float64(c.rate) / SampleRate
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		frac := pos - float64(j)
		k := min(j+1, n-1)
		for ch := range ChannelCount {
			v := c.at(j, ch)*(1-frac) + c.at(k, ch)*frac
			binary.LittleEndian.PutUint16(pcm[(i*ChannelCount+ch)*2:], uint16(toInt16(v)))
		}
	}
	return pcm
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * 32767))
}

package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/olivier-w/goo/internal/media"
)

// maxVoices bounds how many cues may overlap during rapid clicking.
const maxVoices = 4

// PopLabel names the synthesized cue.
const PopLabel = "pop"

// sink is an audio output.
type sink interface {
	Play(pcm []byte, volume float64) error
	Close()
}

// Cue is the sound played on every click. It opens the audio device on first
// use; if that fails the cue mutes itself and playback is never retried.
type Cue struct {
	mu      sync.Mutex
	pcm     []byte
	label   string
	volume  float64
	enabled bool

	open   func() (sink, error)
	out    sink
	failed error
}

// NewCue wraps pcm, which must be SampleRate stereo 16-bit little endian.
func NewCue(pcm []byte, label string, volume float64, enabled bool) *Cue {
	return &Cue{
		pcm:     pcm,
		label:   label,
		volume:  volume,
		enabled: enabled,
		open:    openOto,
	}
}

// Load builds the cue from a sample file, or the synthesized pop when path
// is empty. A sample that fails to decode still yields a usable pop cue
// alongside the error.
func Load(path string, volume float64, enabled bool) (*Cue, error) {
	if path == "" {
		return NewCue(Pop(), PopLabel, volume, enabled), nil
	}
	pcm, err := DecodeFile(path)
	if err != nil {
		return NewCue(Pop(), PopLabel, volume, enabled), fmt.Errorf("loading click sample %s: %w", path, err)
	}
	return NewCue(pcm, media.Label(path), volume, enabled), nil
}

// Label returns the cue's display name.
func (c *Cue) Label() string { return c.label }

// Enabled reports whether clicks make a sound.
func (c *Cue) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetEnabled switches the cue on or off. It cannot be re-enabled once the
// audio device failed to open.
func (c *Cue) SetEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = on && c.failed == nil
}

// Toggle flips the cue and returns the new state.
func (c *Cue) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = !c.enabled && c.failed == nil
	return c.enabled
}

// Play starts one voice of the cue. It is safe to call from any goroutine.
func (c *Cue) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled || len(c.pcm) == 0 {
		return nil
	}
	if c.out == nil {
		out, err := c.open()
		if err != nil {
			c.failed = err
			c.enabled = false
			return fmt.Errorf("opening audio device: %w", err)
		}
		c.out = out
	}
	return c.out.Play(c.pcm, c.volume)
}

// Close stops every voice.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.out != nil {
		c.out.Close()
		c.out = nil
	}
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// otoSink plays cues on the process-wide oto context.
type otoSink struct {
	ctx    *oto.Context
	voices []*oto.Player
}

func openOto() (sink, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	return &otoSink{ctx: ctx}, nil
}

func (s *otoSink) Play(pcm []byte, volume float64) error {
	live := s.voices[:0]
	for _, p := range s.voices {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	s.voices = live
	if len(s.voices) >= maxVoices {
		oldest := s.voices[0]
		oldest.Pause()
		oldest.Close()
		s.voices = s.voices[1:]
	}

	p := s.ctx.NewPlayer(bytes.NewReader(pcm))
	p.SetVolume(volume)
	p.Play()
	s.voices = append(s.voices, p)
	return p.Err()
}

func (s *otoSink) Close() {
	for _, p := range s.voices {
		p.Pause()
		p.Close()
	}
	s.voices = nil
}

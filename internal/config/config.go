// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/goo/internal/render"
)

const (
	MinFPS     = 10
	MaxFPS     = 120
	MinDotSize = 2.0
	MaxDotSize = 32.0
)

// Config is the complete runtime configuration. Keys missing from the file
// keep their defaults.
type Config struct {
	// FPS is the frame tick rate.
	FPS int `yaml:"fps"`

	// Seed drives every jitter and phase. 0 picks a random seed per run.
	Seed uint64 `yaml:"seed"`

	// ReducedMotion is the initial reduced-motion state.
	ReducedMotion bool `yaml:"reducedMotion"`

	// DotSize is simulation pixels per half-block dot.
	DotSize float64 `yaml:"dotSize"`

	Palette PaletteConfig `yaml:"palette"`
	Sound   SoundConfig   `yaml:"sound"`

	// Debug is a log file path. Empty disables logging.
	Debug string `yaml:"debug"`
}

// PaletteConfig holds "#rrggbb" or "#rgb" colours.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Green      string `yaml:"green"`
	Yellow     string `yaml:"yellow"`
	Beige      string `yaml:"beige"`
	Ring       string `yaml:"ring"`
	Trail      string `yaml:"trail"`
	Particle   string `yaml:"particle"`
}

// SoundConfig controls the click cue.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is an optional mp3/wav/flac/ogg sample. Empty uses the built-in pop.
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		FPS:     60,
		DotSize: 8,
		Palette: PaletteConfig{
			Background: render.DefaultBackground,
			Green:      render.DefaultGreen,
			Yellow:     render.DefaultYellow,
			Beige:      render.DefaultBeige,
			Ring:       render.DefaultRing,
			Trail:      render.DefaultTrail,
			Particle:   render.DefaultParticle,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// Load reads and validates the YAML file at path. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges and colours.
func (c *Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be within %d..%d, got %d", MinFPS, MaxFPS, c.FPS)
	}
	if !(c.DotSize >= MinDotSize && c.DotSize <= MaxDotSize) {
		return fmt.Errorf("dotSize must be within %g..%g, got %g", MinDotSize, MaxDotSize, c.DotSize)
	}
	if !(c.Sound.Volume >= 0 && c.Sound.Volume <= 1) {
		return fmt.Errorf("sound.volume must be within 0..1, got %g", c.Sound.Volume)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors parses the palette.
func (c *Config) Colors() (render.Palette, error) {
	var p render.Palette
	var errs []error
	parse := func(name, hex string, dst *colorful.Color) {
		col, err := colorful.Hex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: bad colour %q", name, hex))
			return
		}
		*dst = col
	}
	parse("background", c.Palette.Background, &p.Background)
	parse("green", c.Palette.Green, &p.Green)
	parse("yellow", c.Palette.Yellow, &p.Yellow)
	parse("beige", c.Palette.Beige, &p.Beige)
	parse("ring", c.Palette.Ring, &p.Ring)
	parse("trail", c.Palette.Trail, &p.Trail)
	parse("particle", c.Palette.Particle, &p.Particle)
	if len(errs) > 0 {
		return render.Palette{}, errors.Join(errs...)
	}
	return p, nil
}

package render

import (
	"math"
	"strings"

	"github.com/olivier-w/goo/internal/scene"
)

const (
	glowField  = 0.10
	glowFlash  = 0.12
	glowRadius = 0.45 // of the smaller viewport side

	ringAlpha    = 0.6
	ringWidth    = 3.0 // simulation pixels before viewport scale
	yellowAlpha  = 0.94
	minParticleR = 0.5 // in dots, so a particle always covers one dot
)

// Renderer composes the surface onto a dot canvas and encodes it for the
// terminal. One terminal cell holds two vertically stacked dots.
type Renderer struct {
	profile Profile
	palette Palette

	canvas  *Canvas
	surface Surface

	cols, rows int
	sb         strings.Builder
}

// NewRenderer creates a renderer drawing dot simulation pixels per dot.
func NewRenderer(p Profile, pal Palette, dot float64) *Renderer {
	if dot <= 0 {
		dot = 1
	}
	return &Renderer{
		profile: p,
		palette: pal,
		canvas:  NewCanvas(0, 0, dot),
	}
}

// Profile returns the output colour profile.
func (r *Renderer) Profile() Profile { return r.profile }

// Surface returns the scene graph to project frames into.
func (r *Renderer) Surface() *Surface { return &r.surface }

// Resize sets the output size in terminal cells and mounts the elements.
func (r *Renderer) Resize(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.canvas.Resize(r.cols, r.rows*2)
	r.surface.mounted = r.cols > 0 && r.rows > 0
}

// Viewport returns the scene size in simulation pixels.
func (r *Renderer) Viewport() (w, h float64) {
	return float64(r.canvas.W) * r.canvas.Dot, float64(r.canvas.H) * r.canvas.Dot
}

// Render draws the current surface state and returns rows lines of cols
// cells, without a trailing newline.
func (r *Renderer) Render() string {
	if r.cols == 0 || r.rows == 0 {
		return ""
	}
	r.draw()

	r.sb.Reset()
	r.sb.Grow(r.cols * r.rows * 24)
	if r.profile == NoColor {
		r.encodeASCII()
	} else {
		r.encodeHalfBlock()
	}
	return r.sb.String()
}

func (r *Renderer) draw() {
	c, s, pal := r.canvas, &r.surface, &r.palette
	w, h := r.Viewport()
	scale := math.Min(w, h) / 900

	c.Fill(pal.Background)
	c.Glow(w/2, h/2, math.Min(w, h)*glowRadius, pal.Green, s.field*glowField+s.flash*glowFlash)

	c.FillEllipse(s.beige.t, pal.Beige)
	for i := range s.blobs {
		c.AddBlob(s.blobs[i].t)
	}
	c.FlushGoo(pal.Green)

	y := s.yellow.t
	y.Opacity *= yellowAlpha
	c.FillEllipse(y, pal.Yellow)

	for _, e := range []*element{&s.ringOuter, &s.ringInner, &s.breath} {
		t := e.t
		t.Opacity *= ringAlpha
		c.StrokeEllipse(t, ringWidth*scale, pal.Ring)
	}
	for i := range s.trail {
		c.FillEllipse(s.trail[i].t, pal.Trail)
	}
	for i := range s.particles {
		t := s.particles[i].t
		if t.Width < minParticleR*2*c.Dot {
			grow := minParticleR*2*c.Dot - t.Width
			t.TranslateX -= grow / 2
			t.TranslateY -= grow / 2
			t.Width += grow
			t.Height += grow
		}
		c.FillEllipse(t, pal.Particle)
	}
}

// encodeHalfBlock writes "▀" cells with the top dot as foreground and the
// bottom dot as background.
func (r *Renderer) encodeHalfBlock() {
	var lastFg, lastBg string
	for row := range r.rows {
		for col := range r.cols {
			fg := colorSeq(r.profile, r.canvas.At(col, row*2), false)
			bg := colorSeq(r.profile, r.canvas.At(col, row*2+1), true)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bg != lastBg {
				r.sb.WriteString(bg)
				lastBg = bg
			}
			r.sb.WriteString("▀")
		}
		r.sb.WriteString(ansiReset)
		lastFg, lastBg = "", ""
		if row < r.rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

// encodeASCII maps each cell's averaged dot pair to the brightness ramp.
func (r *Renderer) encodeASCII() {
	for row := range r.rows {
		for col := range r.cols {
			top := r.canvas.At(col, row*2)
			bot := r.canvas.At(col, row*2+1)
			r.sb.WriteByte(brightnessChar(top.BlendRgb(bot, 0.5)))
		}
		if row < r.rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

var _ scene.Surface = (*Surface)(nil)

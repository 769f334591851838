package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivier-w/goo/internal/scene"
	"github.com/olivier-w/goo/internal/util"
)

// gooThreshold is the iso level of the blob field. A lone blob contributes
// exactly gooThreshold on its own outline.
const (
	gooThreshold = 0.75
	gooFalloff   = 0.25 // contribution at twice the radius, subtracted so it ends at zero
	gooCap       = 4.0
	gooSoftness  = 0.3
)

// Canvas is a grid of colour dots. Shapes are given in simulation pixels and
// sampled at dot centers, Dot simulation pixels apart.
type Canvas struct {
	W, H int
	Dot  float64
	Pix  []colorful.Color

	goo []float64
}

// NewCanvas allocates a w×h dot canvas.
func NewCanvas(w, h int, dot float64) *Canvas {
	c := &Canvas{Dot: dot}
	c.Resize(w, h)
	return c
}

// Resize changes the dot grid, reusing storage when it fits.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	n := w * h
	if cap(c.Pix) < n {
		c.Pix = make([]colorful.Color, n)
		c.goo = make([]float64, n)
	}
	c.Pix = c.Pix[:n]
	c.goo = c.goo[:n]
	c.W, c.H = w, h
}

// At returns the dot at (x, y), or black outside the canvas.
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return colorful.Color{}
	}
	return c.Pix[y*c.W+x]
}

// Fill paints every dot with col.
func (c *Canvas) Fill(col colorful.Color) {
	for i := range c.Pix {
		c.Pix[i] = col
	}
}

// Glow tints the canvas toward col around (cx, cy) with a gaussian falloff
// of the given radius. strength is the tint at the center.
func (c *Canvas) Glow(cx, cy, radius float64, col colorful.Color, strength float64) {
	if strength <= 0 || radius <= 0 {
		return
	}
	inv := 1 / (radius * radius)
	for y := range c.H {
		py := (float64(y) + 0.5) * c.Dot
		for x := range c.W {
			px := (float64(x) + 0.5) * c.Dot
			d2 := (px-cx)*(px-cx) + (py-cy)*(py-cy)
			c.blend(y*c.W+x, col, strength*math.Exp(-d2*inv))
		}
	}
}

func (c *Canvas) blend(i int, col colorful.Color, a float64) {
	if a <= 0 {
		return
	}
	if a >= 1 {
		c.Pix[i] = col
		return
	}
	c.Pix[i] = c.Pix[i].BlendRgb(col, a)
}

// ellipse is an axis-aligned ellipse in simulation pixels.
type ellipse struct {
	cx, cy float64
	rx, ry float64
}

func ellipseOf(t scene.Transform) ellipse {
	cx, cy := t.Center()
	return ellipse{
		cx: cx,
		cy: cy,
		rx: math.Abs(t.Width / 2 * t.ScaleX),
		ry: math.Abs(t.Height / 2 * t.ScaleY),
	}
}

func (e ellipse) empty() bool { return !(e.rx > 0) || !(e.ry > 0) }

// span returns the dot rectangle covering the ellipse grown by reach times
// its radii plus pad simulation pixels, clipped to the canvas.
func (c *Canvas) span(e ellipse, reach, pad float64) (x0, y0, x1, y1 int) {
	rx := e.rx*reach + pad
	ry := e.ry*reach + pad
	x0 = max(int(math.Floor((e.cx-rx)/c.Dot)), 0)
	y0 = max(int(math.Floor((e.cy-ry)/c.Dot)), 0)
	x1 = min(int(math.Ceil((e.cx+rx)/c.Dot)), c.W)
	y1 = min(int(math.Ceil((e.cy+ry)/c.Dot)), c.H)
	return x0, y0, x1, y1
}

// norm returns the normalized radial distance of (px, py): 1 on the outline.
func (e ellipse) norm(px, py float64) float64 {
	dx := (px - e.cx) / e.rx
	dy := (py - e.cy) / e.ry
	return math.Sqrt(dx*dx + dy*dy)
}

// FillEllipse paints a disc with an edge softened over about one dot.
func (c *Canvas) FillEllipse(t scene.Transform, col colorful.Color) {
	e := ellipseOf(t)
	if e.empty() || t.Opacity <= 0 {
		return
	}
	r := (e.rx + e.ry) / 2
	x0, y0, x1, y1 := c.span(e, 1, c.Dot)
	for y := y0; y < y1; y++ {
		py := (float64(y) + 0.5) * c.Dot
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) * c.Dot
			edge := util.Clamp((1-e.norm(px, py))*r/c.Dot+0.5, 0, 1)
			c.blend(y*c.W+x, col, edge*t.Opacity)
		}
	}
}

// StrokeEllipse paints the outline of the ellipse, width simulation pixels
// thick.
func (c *Canvas) StrokeEllipse(t scene.Transform, width float64, col colorful.Color) {
	e := ellipseOf(t)
	if e.empty() || t.Opacity <= 0 {
		return
	}
	r := (e.rx + e.ry) / 2
	half := math.Max(width, c.Dot) / 2
	x0, y0, x1, y1 := c.span(e, 1, half+c.Dot)
	for y := y0; y < y1; y++ {
		py := (float64(y) + 0.5) * c.Dot
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) * c.Dot
			d := math.Abs(e.norm(px, py)-1) * r
			edge := util.Clamp((half-d)/c.Dot+0.5, 0, 1)
			c.blend(y*c.W+x, col, edge*t.Opacity)
		}
	}
}

// AddBlob accumulates one metaball into the goo field. Overlapping blobs
// merge where their summed field crosses the threshold.
func (c *Canvas) AddBlob(t scene.Transform) {
	e := ellipseOf(t)
	if e.empty() {
		return
	}
	x0, y0, x1, y1 := c.span(e, 2, c.Dot)
	for y := y0; y < y1; y++ {
		py := (float64(y) + 0.5) * c.Dot
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) * c.Dot
			q := e.norm(px, py)
			if q >= 2 {
				continue
			}
			v := gooCap
			if q > 0 {
				v = math.Min(1/(q*q), gooCap)
			}
			c.goo[y*c.W+x] += v - gooFalloff
		}
	}
}

// FlushGoo paints the thresholded goo field with col and clears it.
func (c *Canvas) FlushGoo(col colorful.Color) {
	for i, g := range c.goo {
		if g == 0 {
			continue
		}
		a := util.Clamp((g-gooThreshold)/gooSoftness+0.5, 0, 1)
		c.blend(i, col, a)
		c.goo[i] = 0
	}
}

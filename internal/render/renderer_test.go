package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivier-w/goo/internal/scene"
	"github.com/olivier-w/goo/internal/sim"
)

func renderSession(t *testing.T, p Profile, cols, rows int) (string, *Renderer) {
	t.Helper()
	r := NewRenderer(p, DefaultPalette(), 8)
	r.Resize(cols, rows)
	s := sim.NewSession(11)
	s.Resize(r.Viewport())
	s.InjectClick(0, 0, 0)
	for i := 1; i <= 12; i++ {
		s.Step(1.0/60, float64(i)/60)
	}
	var f scene.Frame
	scene.Project(s.State, s.Metrics, 0.2, &f)
	f.Apply(r.Surface())
	return r.Render(), r
}

func TestRenderDimensions(t *testing.T) {
	for _, p := range []Profile{NoColor, ANSI16, ANSI256, TrueColor} {
		t.Run(p.String(), func(t *testing.T) {
			out, _ := renderSession(t, p, 60, 20)
			lines := strings.Split(out, "\n")
			if len(lines) != 20 {
				t.Fatalf("got %d lines, want 20", len(lines))
			}
			for i, line := range lines {
				if p == NoColor {
					if strings.Contains(line, "\x1b") {
						t.Fatalf("line %d has escape sequences in ASCII mode", i)
					}
					if utf8.RuneCountInString(line) != 60 {
						t.Fatalf("line %d has %d cells, want 60", i, utf8.RuneCountInString(line))
					}
					continue
				}
				if n := strings.Count(line, "▀"); n != 60 {
					t.Fatalf("line %d has %d cells, want 60", i, n)
				}
				if !strings.HasSuffix(line, ansiReset) {
					t.Fatalf("line %d not reset", i)
				}
			}
		})
	}
}

func TestRenderDrawsScene(t *testing.T) {
	out, _ := renderSession(t, NoColor, 60, 20)
	if strings.TrimSpace(strings.ReplaceAll(out, "\n", "")) == "" {
		t.Fatal("ASCII frame is blank")
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, _ := renderSession(t, TrueColor, 40, 12)
	b, _ := renderSession(t, TrueColor, 40, 12)
	if a != b {
		t.Fatal("same seed and clock rendered different frames")
	}
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer(TrueColor, DefaultPalette(), 8)
	if out := r.Render(); out != "" {
		t.Fatalf("unsized renderer output %q", out)
	}
}

func TestTargetsMountOnResize(t *testing.T) {
	r := NewRenderer(TrueColor, DefaultPalette(), 8)
	s := r.Surface()
	if s.Target(scene.KindBeige, 0) != nil {
		t.Fatal("target available before resize")
	}
	r.Resize(10, 5)
	if s.Target(scene.KindBeige, 0) == nil {
		t.Fatal("beige not mounted after resize")
	}
	if s.Target(scene.KindBeige, 1) != nil {
		t.Fatal("second beige should not exist")
	}
	if s.Target(scene.KindParticle, sim.ParticleCount-1) == nil {
		t.Fatal("last particle not mounted")
	}
	if s.Target(scene.KindParticle, sim.ParticleCount) != nil {
		t.Fatal("particle past pool size mounted")
	}
	if s.Target(scene.KindTrail, -1) != nil {
		t.Fatal("negative trail index mounted")
	}
}

func blobAt(cx, cy, r float64) scene.Transform {
	return scene.Transform{
		TranslateX: cx - r,
		TranslateY: cy - r,
		Width:      2 * r,
		Height:     2 * r,
		ScaleX:     1,
		ScaleY:     1,
		Opacity:    1,
	}
}

func TestGooBridgesNearbyBlobs(t *testing.T) {
	bg := colorful.Color{}
	green := colorful.Color{G: 1}

	c := NewCanvas(40, 21, 1)
	c.Fill(bg)
	c.AddBlob(blobAt(14, 10.5, 5))
	c.FlushGoo(green)
	if !c.At(19, 10).AlmostEqualRgb(bg) {
		t.Fatalf("lone blob reached the gap: %v", c.At(19, 10))
	}
	if !c.At(14, 10).AlmostEqualRgb(green) {
		t.Fatalf("blob center not filled: %v", c.At(14, 10))
	}

	c.Fill(bg)
	c.AddBlob(blobAt(14, 10.5, 5))
	c.AddBlob(blobAt(26, 10.5, 5))
	c.FlushGoo(green)
	if !c.At(19, 10).AlmostEqualRgb(green) {
		t.Fatalf("blobs did not merge: %v", c.At(19, 10))
	}
	for _, g := range c.goo {
		if g != 0 {
			t.Fatal("goo field not cleared after flush")
		}
	}
}

func TestFillEllipse(t *testing.T) {
	bg := colorful.Color{}
	red := colorful.Color{R: 1}
	c := NewCanvas(20, 20, 1)
	c.Fill(bg)

	tr := blobAt(10, 10, 4)
	tr.Opacity = 0.5
	c.FillEllipse(tr, red)
	if got := c.At(9, 9).R; got < 0.49 || got > 0.51 {
		t.Fatalf("center red = %v, want 0.5", got)
	}
	if !c.At(0, 0).AlmostEqualRgb(bg) {
		t.Fatal("corner painted")
	}

	c.Fill(bg)
	tr.Opacity = 0
	c.FillEllipse(tr, red)
	if !c.At(9, 9).AlmostEqualRgb(bg) {
		t.Fatal("invisible ellipse painted")
	}
}

func TestStrokeEllipseLeavesCenter(t *testing.T) {
	bg := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	c := NewCanvas(30, 30, 1)
	c.Fill(bg)
	c.StrokeEllipse(blobAt(15, 15, 10), 2, white)
	if !c.At(14, 14).AlmostEqualRgb(bg) {
		t.Fatal("ring filled its center")
	}
	if c.At(24, 14).R < 0.9 {
		t.Fatalf("ring outline missing: %v", c.At(24, 14))
	}
}

func TestResizeReusesStorage(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.Resize(5, 5)
	if len(c.Pix) != 25 || cap(c.Pix) < 100 {
		t.Fatalf("len %d cap %d", len(c.Pix), cap(c.Pix))
	}
	c.Resize(-1, 3)
	if c.W != 0 || len(c.Pix) != 0 {
		t.Fatal("negative size not clamped")
	}
}

package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/goo/internal/audio"
	"github.com/olivier-w/goo/internal/frame"
	"github.com/olivier-w/goo/internal/render"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, cue *audio.Cue) Model {
	t.Helper()
	m := New(Options{
		Seed:    7,
		FPS:     60,
		DotSize: 8,
		Palette: render.DefaultPalette(),
		Profile: render.NoColor,
		Cue:     cue,
		Clock:   func() time.Time { return t0 },
	})
	m.driver.Start()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 24})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected ui.Model, got %T", next)
	}
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeResizesScene(t *testing.T) {
	m := newTestModel(t, nil)

	met := m.session.Metrics
	if met.W != 120*8 || met.H != 22*2*8 {
		t.Fatalf("expected viewport 960x352, got %.0fx%.0f", met.W, met.H)
	}
	if m.sceneRows != 22 {
		t.Fatalf("expected 22 scene rows, got %d", m.sceneRows)
	}
	if got := lipgloss.Height(m.View()); got != 24 {
		t.Fatalf("expected view height 24, got %d", got)
	}
}

func TestViewEmptyBeforeSize(t *testing.T) {
	m := New(Options{Profile: render.NoColor, Palette: render.DefaultPalette()})
	if v := m.View(); v != "" {
		t.Fatalf("expected empty view before first size, got %q", v)
	}
}

func TestFrameAdvancesSession(t *testing.T) {
	m := newTestModel(t, nil)
	gen := m.driver.Gen()

	m, cmd := update(t, m, frame.Msg{Gen: gen, At: t0})
	if cmd == nil {
		t.Fatal("expected next frame to be scheduled")
	}
	m, _ = update(t, m, frame.Msg{Gen: gen, At: t0.Add(16 * time.Millisecond)})
	if got := m.driver.Elapsed(); got < 0.0159 || got > 0.0161 {
		t.Fatalf("expected elapsed 0.016, got %v", got)
	}
	if m.view == "" {
		t.Fatal("expected scene to be drawn")
	}
}

func TestStaleFrameIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := update(t, m, frame.Msg{Gen: m.driver.Gen() + 5, At: t0})
	if cmd != nil {
		t.Fatal("expected no command for stale frame")
	}
	if m.driver.Elapsed() != 0 {
		t.Fatalf("expected no time to pass, got %v", m.driver.Elapsed())
	}
}

func TestSpacePausesAndResumes(t *testing.T) {
	m := newTestModel(t, nil)
	old := m.driver.Gen()

	m, cmd := update(t, m, key(" "))
	if !m.paused || m.driver.Running() {
		t.Fatal("expected paused driver")
	}
	if cmd == nil {
		t.Fatal("expected window title command")
	}
	if _, cmd := update(t, m, frame.Msg{Gen: old, At: t0}); cmd != nil {
		t.Fatal("expected in-flight frame to be dropped after pause")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Fatal("expected paused indicator in status line")
	}

	m, cmd = update(t, m, key(" "))
	if m.paused || !m.driver.Running() {
		t.Fatal("expected running driver after resume")
	}
	if cmd == nil {
		t.Fatal("expected frame command after resume")
	}
	if m.driver.Gen() == old {
		t.Fatal("expected a new generation after resume")
	}
}

func TestMouseClickInjectsClick(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Fatal("expected no cue command without a cue")
	}
	st := m.session.State
	if !st.Click.Seen {
		t.Fatal("expected click to be recorded")
	}
	if st.Flash != 1 {
		t.Fatalf("expected flash 1, got %v", st.Flash)
	}
	if !m.session.Pointer.Present {
		t.Fatal("expected pointer present after press")
	}
}

func TestClickCueCommand(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		wantCmd bool
	}{
		{"enabled", true, true},
		{"muted", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue := audio.NewCue(audio.Pop(), audio.PopLabel, 0.5, tt.enabled)
			m := newTestModel(t, cue)
			_, cmd := update(t, m, tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			if (cmd != nil) != tt.wantCmd {
				t.Fatalf("expected command %v, got %v", tt.wantCmd, cmd != nil)
			}
		})
	}
}

func TestMouseOverFooterLeaves(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionMotion})
	if !m.session.Pointer.Present {
		t.Fatal("expected pointer present over scene")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 23, Action: tea.MouseActionMotion})
	if m.session.Pointer.Present {
		t.Fatal("expected pointer to leave over footer")
	}
}

func TestBlurLeaves(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tea.BlurMsg{})
	if m.session.Pointer.Present {
		t.Fatal("expected pointer absent after blur")
	}
}

func TestKeyToggles(t *testing.T) {
	cue := audio.NewCue(audio.Pop(), audio.PopLabel, 0.5, true)
	m := newTestModel(t, cue)

	m, _ = update(t, m, key("m"))
	if !m.session.ReducedMotion() {
		t.Fatal("expected reduced motion on")
	}
	if !strings.Contains(m.View(), "motion reduced") {
		t.Fatal("expected reduced motion indicator")
	}
	m, _ = update(t, m, key("m"))
	if m.session.ReducedMotion() {
		t.Fatal("expected reduced motion off")
	}

	m, _ = update(t, m, key("s"))
	if cue.Enabled() {
		t.Fatal("expected sound muted")
	}
	if !strings.Contains(m.View(), "sound off") {
		t.Fatal("expected sound off indicator")
	}
}

func TestCenterKeyClicksGroup(t *testing.T) {
	m := newTestModel(t, nil)
	g := m.session.State.Green

	m, _ = update(t, m, key("c"))
	c := m.session.State.Click
	if !c.Seen {
		t.Fatal("expected click from center key")
	}
	if c.X != g.X || c.Y != g.Y {
		t.Fatalf("expected click at group center (%v,%v), got (%v,%v)", g.X, g.Y, c.X, c.Y)
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, nil)
		m, cmd := update(t, m, k)
		if !m.quitting {
			t.Fatalf("%s: expected quitting", k)
		}
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if m.driver.Running() {
			t.Fatalf("%s: expected driver stopped", k)
		}
		if m.View() != "" {
			t.Fatalf("%s: expected empty view after quit", k)
		}
	}
}

func TestMeterSettles(t *testing.T) {
	mt := newMeter(60)
	for range 600 {
		mt.step(0.8)
	}
	if v := mt.value(); v < 0.79 || v > 0.81 {
		t.Fatalf("expected meter near 0.8, got %v", v)
	}
	for range 600 {
		mt.step(0)
	}
	if v := mt.value(); v < 0 || v > 0.01 {
		t.Fatalf("expected meter near 0, got %v", v)
	}
}

func TestJoinStatusSkipsEmpty(t *testing.T) {
	if got := joinStatus("a", "", "b"); got != "a  b" {
		t.Fatalf("expected %q, got %q", "a  b", got)
	}
}

package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/goo/internal/audio"
	"github.com/olivier-w/goo/internal/frame"
	"github.com/olivier-w/goo/internal/input"
	"github.com/olivier-w/goo/internal/render"
	"github.com/olivier-w/goo/internal/scene"
	"github.com/olivier-w/goo/internal/sim"
	"github.com/olivier-w/goo/internal/util"
)

// footerLines is the status line plus the help line.
const footerLines = 2

// Options configures a hero model.
type Options struct {
	Seed          uint64
	FPS           int
	DotSize       float64
	ReducedMotion bool
	Palette       render.Palette
	Profile       render.Profile

	// Cue plays on every click. Nil runs silent.
	Cue *audio.Cue

	// Clock returns wall time for input that lands between frames.
	// Defaults to time.Now.
	Clock func() time.Time
}

// Model is the Bubbletea model for the goo hero.
type Model struct {
	session  *sim.Session
	driver   *frame.Driver
	adapter  *input.Adapter
	renderer *render.Renderer
	frame    *scene.Frame
	counter  *frame.Counter
	cue      *audio.Cue
	clock    func() time.Time

	fieldMeter *meter
	flashMeter *meter
	fieldBar   progress.Model
	flashBar   progress.Model

	width     int
	height    int
	sceneRows int
	view      string
	fps       int
	paused    bool
	quitting  bool
}

// New creates a hero model. The scene stays empty until the first
// WindowSizeMsg.
func New(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.DotSize <= 0 {
		opts.DotSize = 8
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := sim.NewSession(opts.Seed)
	s.SetReducedMotion(opts.ReducedMotion)

	field, flash := newMeter(opts.FPS), newMeter(opts.FPS)
	pal := opts.Palette
	return Model{
		session:    s,
		driver:     frame.NewDriver(opts.FPS),
		adapter:    input.NewAdapter(s, opts.DotSize),
		renderer:   render.NewRenderer(opts.Profile, pal, opts.DotSize),
		frame:      new(scene.Frame),
		counter:    new(frame.Counter),
		cue:        opts.Cue,
		clock:      opts.Clock,
		fieldMeter: &field,
		flashMeter: &flash,
		fieldBar:   newBar(pal.Green.Hex(), pal.Trail.Hex()),
		flashBar:   newBar(pal.Yellow.Hex(), pal.Particle.Hex()),
	}
}

// Session exposes the running simulation.
func (m Model) Session() *sim.Session { return m.session }

// CueLabel names the click cue, or "" when clicks are silent.
func (m Model) CueLabel() string {
	if m.cue == nil {
		return ""
	}
	return m.cue.Label()
}

func (m Model) Init() tea.Cmd {
	m.counter.Reset(m.clock())
	log.Printf("driver start: %v per frame", m.driver.Interval())
	return tea.Batch(m.driver.Start(), tea.SetWindowTitle(windowTitle(false)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frame.Msg:
		tick, ok := m.driver.Accept(msg)
		if !ok {
			return m, nil
		}
		m.session.Step(tick.DT, tick.Now)
		m.draw(tick.Now)
		m.fps = m.counter.Tick(msg.At)
		m.fieldMeter.step(m.frame.Field)
		m.flashMeter.step(m.frame.Flash)
		return m, m.driver.Next()

	case tea.MouseMsg:
		now := m.driver.Now(m.clock())
		if m.adapter.HandleMouse(msg, now) == input.Click {
			return m, playCue(m.cue)
		}
		return m, nil

	case tea.BlurMsg:
		m.adapter.HandleBlur(msg)
		return m, nil

	case cuePlayedMsg:
		if msg.err != nil {
			log.Printf("click cue: %v", msg.err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.driver.Stop()
		if m.cue != nil {
			m.cue.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	switch msg.String() {
	case " ":
		if m.driver.Running() {
			m.driver.Stop()
			m.paused = true
			log.Printf("driver stop at %.3fs", m.driver.Elapsed())
			return m, tea.SetWindowTitle(windowTitle(true))
		}
		m.paused = false
		m.counter.Reset(m.clock())
		log.Printf("driver start at %.3fs", m.driver.Elapsed())
		return m, tea.Batch(m.driver.Start(), tea.SetWindowTitle(windowTitle(false)))
	case "m":
		on := !m.session.ReducedMotion()
		m.session.SetReducedMotion(on)
		log.Printf("reduced motion: %v", on)
	case "s":
		if m.cue != nil {
			m.cue.Toggle()
		}
	case "c":
		g := m.session.State.Green
		m.session.InjectClick(g.X, g.Y, m.driver.Now(m.clock()))
		return m, playCue(m.cue)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = max(w, 0), max(h, 0)
	m.sceneRows = max(m.height-footerLines, 0)
	m.renderer.Resize(m.width, m.sceneRows)
	vw, vh := m.renderer.Viewport()
	m.session.Resize(vw, vh)
	m.adapter.SetSceneRows(m.sceneRows)
	m.draw(m.driver.Elapsed())
	log.Printf("resize: %dx%d cells, viewport %.0fx%.0f", m.width, m.height, vw, vh)
}

func (m *Model) draw(now float64) {
	scene.Project(m.session.State, m.session.Metrics, now, m.frame)
	m.frame.Apply(m.renderer.Surface())
	m.view = m.renderer.Render()
}

func (m Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}

	var b strings.Builder
	if m.sceneRows > 0 {
		b.WriteString(m.view)
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.MaxWidth(m.width).Render(m.statusLine()))
	b.WriteByte('\n')
	b.WriteString(helpStyle.MaxWidth(m.width).Render(helpText(m.cue != nil)))
	return b.String()
}

func (m Model) statusLine() string {
	uptime := time.Duration(m.driver.Elapsed() * float64(time.Second))
	state := ""
	if m.paused {
		state = pausedStyle.Render("paused")
	}
	sound := ""
	if m.cue != nil {
		sound = renderSound(m.cue.Enabled(), m.cue.Label())
	}
	return " " + joinStatus(
		titleStyle.Render("goo"),
		state,
		renderMeter("field", m.fieldBar, m.fieldMeter.value()),
		renderMeter("flash", m.flashBar, m.flashMeter.value()),
		util.FormatElapsed(uptime),
		renderFPS(m.fps),
		renderMotion(m.session.ReducedMotion()),
		sound,
	)
}

func windowTitle(paused bool) string {
	if paused {
		return "⏸ goo"
	}
	return "goo"
}

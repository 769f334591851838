package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/goo/internal/sim"
)

// Event is what a terminal message turned into.
type Event uint8

const (
	None Event = iota
	Click
	Move
	Leave
)

func (e Event) String() string {
	switch e {
	case Click:
		return "click"
	case Move:
		return "move"
	case Leave:
		return "leave"
	}
	return "none"
}

// Adapter converts pointer signals into session updates. Client coordinates
// are simulation pixels with the origin at the scene's top-left corner.
type Adapter struct {
	session *sim.Session

	dot       float64
	sceneRows int
}

// NewAdapter maps terminal cells onto s, dot simulation pixels per
// half-block dot (two dots per cell row).
func NewAdapter(s *sim.Session, dot float64) *Adapter {
	if dot <= 0 {
		dot = 1
	}
	return &Adapter{session: s, dot: dot}
}

// SetSceneRows sets how many terminal rows belong to the scene. Pointer
// events below them are treated as leaving the scene.
func (a *Adapter) SetSceneRows(rows int) { a.sceneRows = rows }

// ToLocal converts client coordinates to coordinates relative to the
// viewport center.
func (a *Adapter) ToLocal(clientX, clientY float64) (float64, float64) {
	m := a.session.Metrics
	return clientX - m.CX, clientY - m.CY
}

// OnPointerDown injects a click at the client point.
func (a *Adapter) OnPointerDown(clientX, clientY, now float64) {
	x, y := a.ToLocal(clientX, clientY)
	a.session.InjectClick(x, y, now)
}

// OnPointerMove tracks the pointer. It applies no force.
func (a *Adapter) OnPointerMove(clientX, clientY float64) {
	x, y := a.ToLocal(clientX, clientY)
	a.session.UpdatePointer(x, y, true)
}

// OnPointerLeave marks the pointer absent; hover decays from the next Step.
func (a *Adapter) OnPointerLeave() {
	p := a.session.Pointer
	a.session.UpdatePointer(p.X, p.Y, false)
}

// CellToClient returns the client point at the center of a terminal cell.
func (a *Adapter) CellToClient(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * a.dot, (float64(row)*2 + 1) * a.dot
}

// HandleMouse applies a bubbletea mouse message at session time now.
func (a *Adapter) HandleMouse(msg tea.MouseMsg, now float64) Event {
	if a.sceneRows > 0 && msg.Y >= a.sceneRows {
		if a.session.Pointer.Present {
			a.OnPointerLeave()
			return Leave
		}
		return None
	}
	x, y := a.CellToClient(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return None
		}
		a.OnPointerMove(x, y)
		a.OnPointerDown(x, y, now)
		return Click
	case tea.MouseActionMotion:
		a.OnPointerMove(x, y)
		return Move
	}
	return None
}

// HandleBlur treats focus loss as the pointer leaving.
func (a *Adapter) HandleBlur(tea.BlurMsg) Event {
	a.OnPointerLeave()
	return Leave
}

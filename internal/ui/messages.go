package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/goo/internal/audio"
)

// cuePlayedMsg reports the outcome of a click cue playback.
type cuePlayedMsg struct {
	err error
}

func playCue(c *audio.Cue) tea.Cmd {
	if c == nil || !c.Enabled() {
		return nil
	}
	return func() tea.Msg {
		return cuePlayedMsg{err: c.Play()}
	}
}

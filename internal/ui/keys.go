package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(hasCue bool) string {
	s := "click poke  c center  space pause  m motion"
	if hasCue {
		s += "  s sound"
	}
	s += "  q quit"
	return s
}

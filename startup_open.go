package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/goo/internal/audio"
	"github.com/olivier-w/goo/internal/config"
	"github.com/olivier-w/goo/internal/ui"
)

// buildHeroModel decodes the click sample and builds the hero model. A
// sample that fails to load still yields a model with the synthesized cue;
// the error travels along so the caller can report it.
func buildHeroModel(opts ui.Options, sound config.SoundConfig) (ui.Model, error) {
	cue, err := audio.Load(sound.Path, sound.Volume, sound.Enabled)
	opts.Cue = cue
	return ui.New(opts), err
}

func openHeroCmd(opts ui.Options, sound config.SoundConfig) tea.Cmd {
	return func() tea.Msg {
		model, err := buildHeroModel(opts, sound)
		return startupResolvedMsg{model: model, err: err}
	}
}

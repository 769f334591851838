package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

const meterWidth = 12

func newBar(from, to string) progress.Model {
	return progress.New(
		progress.WithScaledGradient(from, to),
		progress.WithoutPercentage(),
		progress.WithWidth(meterWidth),
	)
}

func renderMeter(label string, bar progress.Model, v float64) string {
	if v > 1 {
		v = 1
	}
	return dimStyle.Render(label) + " " + bar.ViewAs(v)
}

func renderFPS(fps int) string {
	return fmt.Sprintf("%d fps", fps)
}

func renderMotion(reduced bool) string {
	if reduced {
		return "motion reduced"
	}
	return "motion full"
}

func renderSound(enabled bool, label string) string {
	if !enabled {
		return "sound off"
	}
	if label == "" {
		return "sound on"
	}
	return "sound " + label
}

func joinStatus(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "  ")
}

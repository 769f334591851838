package ui

import "github.com/charmbracelet/harmonica"

const (
	meterFrequency = 7.0
	meterDamping   = 0.9
)

// meter is a spring-smoothed display value.
type meter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newMeter(fps int) meter {
	return meter{spring: harmonica.NewSpring(harmonica.FPS(fps), meterFrequency, meterDamping)}
}

func (m *meter) step(target float64) float64 {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
	if m.pos < 0 {
		m.pos, m.vel = 0, 0
	}
	return m.pos
}

func (m *meter) value() float64 { return m.pos }

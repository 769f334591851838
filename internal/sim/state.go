package sim

import "math"

// Click is the most recent click. A new click overwrites it.
type Click struct {
	At   float64
	X, Y float64
	Seen bool
}

// Since returns seconds elapsed since the click, or +Inf before any click.
func (c Click) Since(now float64) float64 {
	if !c.Seen {
		return math.Inf(1)
	}
	return now - c.At
}

// State is the complete mutable simulation record of one session.
type State struct {
	Click Click

	Flash      float64
	Field      float64
	FieldTimer float64

	Green  Body
	Blobs  [BlobCount]Blob
	Yellow Orb
	Beige  Anchor

	Trail    Trail
	trailAcc float64

	Particles Pool
}

// NewState returns a state with unit scales and the fixed blob phases. Body
// positions are placed by Reseed.
func NewState() *State {
	s := &State{
		Green:  newBody(),
		Yellow: Orb{S: 1},
		Beige:  Anchor{S: 1},
	}
	for i := range s.Blobs {
		s.Blobs[i] = Blob{Body: newBody(), Phase: blobPhases[i]}
	}
	return s
}

// Reseed moves every body to its base position for the given metrics.
// Velocities and scales are left alone.
func (s *State) Reseed(m Metrics) {
	s.Green.X, s.Green.Y = 0, 0
	s.Yellow.X, s.Yellow.Y = yellowBaseX*m.Scale, 0
	s.Beige.X, s.Beige.Y = beigeBaseX*m.Scale, beigeBaseY*m.Scale
	for i := range s.Blobs {
		o := BlobOffset(i, m.Scale)
		s.Blobs[i].X = s.Green.X + o.X
		s.Blobs[i].Y = s.Green.Y + o.Y
	}
}

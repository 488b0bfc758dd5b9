// Package anim holds the per-frame animation state: the render automaton
// deciding which segment to draw, the frame clock, and the model matrix
// pipeline.
package anim

import "github.com/Faultbox/logoanim/internal/mesh"

// Toggle periods in angle ticks. The secondary shape is shown for a shorter
// stretch than the primary one.
const (
	PrimaryPeriod   = 180
	SecondaryPeriod = 30

	// FullTurn is the angle modulus.
	FullTurn = 360
)

// Snapshot is a read-only copy of the automaton state.
type Snapshot struct {
	Angle            int
	Active           mesh.SegmentName
	TransformEnabled bool
	TogglePeriod     int
}

// Automaton is the two-state machine alternating between the primary and
// secondary segment. It is driven by one Advance per rendered frame and is
// not safe for concurrent use.
type Automaton struct {
	state   Snapshot
	toggles uint64
}

// NewAutomaton returns an automaton in its initial state: primary segment,
// transforms on, period 180, angle 0.
func NewAutomaton() *Automaton {
	return &Automaton{
		state: Snapshot{
			Angle:            0,
			Active:           mesh.Primary,
			TransformEnabled: true,
			TogglePeriod:     PrimaryPeriod,
		},
	}
}

// Current returns the current state.
func (a *Automaton) Current() Snapshot {
	return a.state
}

// Toggles returns how many times the automaton has switched segments.
func (a *Automaton) Toggles() uint64 {
	return a.toggles
}

// Advance moves the angle forward by one tick and toggles when the new
// angle is a multiple of the current period. It returns true if a toggle
// happened. Skipped frames are not caught up.
func (a *Automaton) Advance() bool {
	a.state.Angle = (a.state.Angle + 1) % FullTurn
	if a.state.Angle%a.state.TogglePeriod != 0 {
		return false
	}

	a.state.Active = a.state.Active.Other()
	if a.state.TogglePeriod == PrimaryPeriod {
		a.state.TogglePeriod = SecondaryPeriod
	} else {
		a.state.TogglePeriod = PrimaryPeriod
	}
	a.state.TransformEnabled = !a.state.TransformEnabled
	a.toggles++
	return true
}

package motion

import "math"

const (
	springMaxStep   = 1.0 / 240
	springRestDelta = 0.001
	springRestSpeed = 0.01
)

// Spring is a damped harmonic oscillator chasing Target
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	Position float64
	Velocity float64
	Target   float64
}

// NewSpring creates a spring at rest on position
func NewSpring(stiffness, damping, mass, position float64) *Spring {
	return &Spring{
		Stiffness: stiffness,
		Damping:   damping,
		Mass:      mass,
		Position:  position,
		Target:    position,
	}
}

// Step advances the simulation by dt seconds using fixed sub-steps
func (s *Spring) Step(dt float64) float64 {
	if dt <= 0 || s.Mass <= 0 {
		return s.Position
	}
	for dt > 0 {
		h := math.Min(dt, springMaxStep)
		force := -s.Stiffness*(s.Position-s.Target) - s.Damping*s.Velocity
		s.Velocity += force / s.Mass * h
		s.Position += s.Velocity * h
		dt -= h
	}
	if s.AtRest() {
		s.Position = s.Target
		s.Velocity = 0
	}
	return s.Position
}

// AtRest reports whether the spring has settled on its target
func (s *Spring) AtRest() bool {
	return math.Abs(s.Position-s.Target) < springRestDelta && math.Abs(s.Velocity) < springRestSpeed
}

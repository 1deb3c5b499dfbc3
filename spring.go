package sway

import "math"

// Simulation constants. The step size is fixed: Tick is always called with
// the same dt regardless of measured frame deltas, which keeps the
// integration stable and replayable.
const (
	// DefaultDT is the simulation step used by Run and recommended for
	// custom frame drivers (one step per 60 Hz tick).
	DefaultDT = 1.0 / 60.0

	// settleEpsilon is the displacement and velocity magnitude below which
	// a spring counts as settled.
	settleEpsilon = 0.001

	// positionHysteresis and opacityHysteresis gate value publication:
	// a new value is published only when it differs from the last
	// published one by more than the threshold.
	positionHysteresis = 0.005
	opacityHysteresis  = 0.01
)

// Spring is a damped harmonic oscillator integrated with semi-implicit
// Euler at a fixed step. It is the single motion primitive in sway; Items
// and SpringWidgets each own exactly one.
type Spring struct {
	Mass      float64
	Stiffness float64
	Damping   float64
	Position  float64
	Target    float64
	Velocity  float64
}

// Step advances the spring by dt seconds. Semi-implicit Euler: velocity is
// updated from the current forces first, then position from the new
// velocity. Deterministic for identical state and dt.
func (s *Spring) Step(dt float64) {
	displacement := s.Position - s.Target
	force := -s.Stiffness*displacement - s.Damping*s.Velocity
	s.Velocity += force / s.Mass * dt
	s.Position += s.Velocity * dt
}

// Settled reports whether the spring has effectively stopped: both the
// displacement from the target and the velocity are under settleEpsilon.
func (s *Spring) Settled() bool {
	return math.Abs(s.Position-s.Target) < settleEpsilon &&
		math.Abs(s.Velocity) < settleEpsilon
}

package sway

import "math"

// SpringWidget is a standalone spring-backed value for interactive
// controls: press scale, hover offset, anything that must chase a target
// that changes with input. Unlike Group Items, widgets are never evicted —
// a control must stay responsive for as long as its UI element exists — so
// the scheduler advances them every tick for the life of the process (or
// until Scheduler.Reset).
type SpringWidget struct {
	// Value is the last published spring position.
	Value float64

	// OnChange, if set, is called after each tick that published a new
	// Value.
	OnChange func(*SpringWidget)

	spring Spring
}

func newSpringWidget(cfg Config) *SpringWidget {
	return &SpringWidget{
		Value: cfg.From,
		spring: Spring{
			Mass:      cfg.Mass,
			Stiffness: cfg.Stiffness,
			Damping:   cfg.Damping,
			Position:  cfg.From,
			Target:    cfg.To,
		},
	}
}

// SetTarget retargets the spring. The widget chases the new target from its
// current position and velocity, so mid-flight retargets stay smooth.
func (w *SpringWidget) SetTarget(target float64) {
	w.spring.Target = target
}

// Target returns the spring's current target.
func (w *SpringWidget) Target() float64 {
	return w.spring.Target
}

// advance runs one simulation step and publishes the position if it moved
// past the hysteresis threshold.
func (w *SpringWidget) advance(_, dt float64) bool {
	w.spring.Step(dt)
	if math.Abs(w.spring.Position-w.Value) > positionHysteresis {
		w.Value = w.spring.Position
		if w.OnChange != nil {
			w.OnChange(w)
		}
	}
	// Widgets are never done: they must keep reacting to retargets.
	return false
}

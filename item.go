package sway

import "math"

// Item is one animated element of a Group — typically a single word of a
// text block. It owns one Spring plus a linear opacity ramp that runs
// independently of the spring.
//
// Position and Opacity are the published values a renderer reads. They lag
// the raw simulation by at most the publication hysteresis: a tick that
// moves the spring less than the threshold publishes nothing, so a renderer
// polling these fields (or hooked via OnChange) sees no redundant changes.
type Item struct {
	// Label identifies the element to the renderer (e.g. the word text).
	Label string

	// Delay is this Item's start offset within its Group, in seconds:
	// index * Config.Stagger.
	Delay float64

	// Position is the last published spring position.
	Position float64

	// Opacity is the last published opacity, in [0, 1].
	Opacity float64

	// OnChange, if set, is called after each tick that published a new
	// Position or Opacity. Nil by default; zero cost when unused.
	OnChange func(*Item)

	spring    Spring
	active    bool
	converged bool
}

func newItem(label string, delay float64, cfg Config) *Item {
	return &Item{
		Label:    label,
		Delay:    delay,
		Position: cfg.From,
		spring: Spring{
			Mass:      cfg.Mass,
			Stiffness: cfg.Stiffness,
			Damping:   cfg.Damping,
			Position:  cfg.From,
			Target:    cfg.To,
		},
	}
}

// Active reports whether the Item's start delay has elapsed.
func (it *Item) Active() bool {
	return it.active
}

// Converged reports whether the Item's spring has settled. A converged
// Item is never advanced again.
func (it *Item) Converged() bool {
	return it.converged
}

// activateIfDue flips active exactly once, when the group-local clock
// reaches the Item's delay. One-way: a later clock regression (misbehaving
// frame driver) does not deactivate it.
func (it *Item) activateIfDue(groupElapsed float64) {
	if !it.active && groupElapsed >= it.Delay {
		it.active = true
	}
}

// advance runs one simulation step. No-op for dormant or converged Items.
func (it *Item) advance(groupElapsed, dt float64, cfg Config) {
	if !it.active || it.converged {
		return
	}

	// Live retargeting: the shared Config may have been rebuilt with a new
	// destination (hover state flips and the like).
	if it.spring.Target != cfg.To {
		it.spring.Target = cfg.To
	}

	it.spring.Step(dt)

	published := false
	if math.Abs(it.spring.Position-it.Position) > positionHysteresis {
		it.Position = it.spring.Position
		published = true
	}

	if it.spring.Settled() {
		it.converged = true
	}

	// The opacity ramp is a pure function of the group clock, decoupled
	// from the spring.
	if opacity := cfg.fade(groupElapsed - it.Delay); math.Abs(opacity-it.Opacity) > opacityHysteresis {
		it.Opacity = opacity
		published = true
	}

	if published && it.OnChange != nil {
		it.OnChange(it)
	}
}

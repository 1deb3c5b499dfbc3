package sway

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Config is the immutable parameter bundle for one animation. It is supplied
// at Group or SpringWidget creation time and shared by every Item in a
// Group; sway never mutates it afterward.
//
// Spring parameters (Mass, Stiffness, Damping) and endpoints (From, To)
// drive the motion. Stagger offsets each successive Item's start within a
// Group, StartDelay offsets the whole Group on the global clock, and
// FadeDuration is the length of the per-Item opacity ramp. FadeEase shapes
// that ramp; nil means ease.Linear.
type Config struct {
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`

	// From and To are the spring's initial position and target.
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`

	// Stagger is the per-Item start offset within a Group, in seconds.
	// Item i begins moving Stagger*i seconds after the Group starts.
	Stagger float64 `yaml:"stagger"`

	// StartDelay defers the whole Group relative to the global clock.
	StartDelay float64 `yaml:"start_delay"`

	// FadeDuration is the length of the opacity ramp, in seconds.
	// Zero means Items appear at full opacity as soon as they activate.
	FadeDuration float64 `yaml:"fade_duration"`

	// FadeEase shapes the opacity ramp. Not settable from YAML; nil
	// selects ease.Linear.
	FadeEase ease.TweenFunc `yaml:"-"`
}

// Validate reports whether the Config is usable. A non-positive or
// non-finite Mass corrupts the integration silently (division by Mass), so
// it is rejected here rather than at simulation time. The remaining fields
// only need to be finite.
func (c Config) Validate() error {
	if !(c.Mass > 0) || math.IsInf(c.Mass, 1) {
		return fmt.Errorf("sway: config mass must be positive and finite, got %v", c.Mass)
	}
	for _, v := range []float64{c.Stiffness, c.Damping, c.From, c.To, c.Stagger, c.StartDelay, c.FadeDuration} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sway: config contains non-finite value %v", v)
		}
	}
	return nil
}

// fade evaluates the opacity ramp at t seconds after an Item's activation,
// clamped to [0, 1].
func (c Config) fade(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if c.FadeDuration <= 0 || t >= c.FadeDuration {
		return 1
	}
	fn := c.FadeEase
	if fn == nil {
		fn = ease.Linear
	}
	v := float64(fn(float32(t), 0, 1, float32(c.FadeDuration)))
	return min(max(v, 0), 1)
}

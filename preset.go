package sway

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Built-in presets. WordReveal is tuned for staggered text entrances
// (slide up from below while fading in); Press is a stiff, quick spring
// for press/hover scale feedback on controls.
var (
	WordReveal = Config{
		Mass:         1,
		Stiffness:    400,
		Damping:      11,
		From:         -2,
		To:           0,
		Stagger:      0.01,
		StartDelay:   0.2,
		FadeDuration: 0.5,
	}

	Press = Config{
		Mass:      1,
		Stiffness: 600,
		Damping:   18,
		From:      1,
		To:        1,
	}
)

// LoadPresets parses a YAML document mapping preset names to Configs:
//
//	word_reveal:
//	  mass: 1
//	  stiffness: 400
//	  damping: 11
//	  from: -2
//	  stagger: 0.01
//	  start_delay: 0.2
//	  fade_duration: 0.5
//
// Every preset is validated; a zero mass in a preset file is a config
// error, not a runtime one.
func LoadPresets(data []byte) (map[string]Config, error) {
	var presets map[string]Config
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, cfg := range presets {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return presets, nil
}

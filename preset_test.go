package sway

import (
	"strings"
	"testing"
)

func TestBuiltinPresetsValid(t *testing.T) {
	for name, cfg := range map[string]Config{"WordReveal": WordReveal, "Press": Press} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestLoadPresets(t *testing.T) {
	data := []byte(`
hero_title:
  mass: 1
  stiffness: 400
  damping: 11
  from: -2
  stagger: 0.01
  start_delay: 0.2
  fade_duration: 0.5
button_press:
  mass: 1
  stiffness: 600
  damping: 18
  from: 1
  to: 1
`)
	presets, err := LoadPresets(data)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("len(presets) = %d, want 2", len(presets))
	}

	hero := presets["hero_title"]
	if hero.Stiffness != 400 || hero.Damping != 11 || hero.From != -2 {
		t.Errorf("hero_title spring params = %v/%v/%v, want 400/11/-2", hero.Stiffness, hero.Damping, hero.From)
	}
	if hero.Stagger != 0.01 || hero.StartDelay != 0.2 || hero.FadeDuration != 0.5 {
		t.Errorf("hero_title timing = %v/%v/%v", hero.Stagger, hero.StartDelay, hero.FadeDuration)
	}
	if presets["button_press"].Stiffness != 600 {
		t.Errorf("button_press stiffness = %v, want 600", presets["button_press"].Stiffness)
	}
}

func TestLoadPresetsRejectsMalformedYAML(t *testing.T) {
	_, err := LoadPresets([]byte("hero: [not a config"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse presets") {
		t.Errorf("error = %q, want parse context", err)
	}
}

func TestLoadPresetsRejectsInvalidConfig(t *testing.T) {
	_, err := LoadPresets([]byte("bad:\n  mass: 0\n  stiffness: 400\n"))
	if err == nil {
		t.Fatal("expected validation error for zero mass")
	}
	if !strings.Contains(err.Error(), `preset "bad"`) {
		t.Errorf("error = %q, want preset name context", err)
	}
}

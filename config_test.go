package sway

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Mass: 1, Stiffness: 400, Damping: 11}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero mass", func(c *Config) { c.Mass = 0 }, true},
		{"negative mass", func(c *Config) { c.Mass = -1 }, true},
		{"NaN mass", func(c *Config) { c.Mass = math.NaN() }, true},
		{"infinite mass", func(c *Config) { c.Mass = math.Inf(1) }, true},
		{"NaN stiffness", func(c *Config) { c.Stiffness = math.NaN() }, true},
		{"infinite stagger", func(c *Config) { c.Stagger = math.Inf(1) }, true},
		{"NaN fade duration", func(c *Config) { c.FadeDuration = math.NaN() }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFadeClamps(t *testing.T) {
	cfg := Config{Mass: 1, FadeDuration: 0.5}

	if got := cfg.fade(-1); got != 0 {
		t.Errorf("fade(-1) = %v, want 0", got)
	}
	if got := cfg.fade(0); got != 0 {
		t.Errorf("fade(0) = %v, want 0", got)
	}
	if got := cfg.fade(0.5); got != 1 {
		t.Errorf("fade(0.5) = %v, want 1", got)
	}
	if got := cfg.fade(10); got != 1 {
		t.Errorf("fade(10) = %v, want 1", got)
	}
	if got := cfg.fade(0.25); math.Abs(got-0.5) > 0.01 {
		t.Errorf("fade(0.25) = %v, want ~0.5 (linear default)", got)
	}
}

func TestConfigFadeZeroDuration(t *testing.T) {
	// No ramp: items appear at full opacity as soon as they activate.
	cfg := Config{Mass: 1}

	if got := cfg.fade(0); got != 0 {
		t.Errorf("fade(0) = %v, want 0", got)
	}
	if got := cfg.fade(0.0001); got != 1 {
		t.Errorf("fade(0.0001) = %v, want 1", got)
	}
}

func TestConfigFadeCustomEase(t *testing.T) {
	cfg := Config{Mass: 1, FadeDuration: 1, FadeEase: ease.InQuad}

	// InQuad at the midpoint: (0.5)^2 = 0.25.
	if got := cfg.fade(0.5); math.Abs(got-0.25) > 0.01 {
		t.Errorf("fade(0.5) with InQuad = %v, want ~0.25", got)
	}
	if got := cfg.fade(2); got != 1 {
		t.Errorf("fade past duration = %v, want 1", got)
	}
}

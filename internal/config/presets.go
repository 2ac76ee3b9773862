package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/timeflow/internal/particle"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"calm": func(c *Config) {
		c.TimeScale = 0.5
		c.Params.Speed = 1
		c.Params.RingFade = 1
	},
	"rush": func(c *Config) {
		c.TimeScale = 2
		c.Params.Speed = 4
		c.Params.PathAmplitude = 80
		c.MaxFrames = 600
	},
	"wide": func(c *Config) {
		c.Viewport = particle.Viewport{Width: 1280, Height: 720}
		c.Params.PathAmplitude = 120
		c.Params.PathFrequency = 0.02
	},
	"compact": func(c *Config) {
		c.Viewport = particle.Viewport{Width: 400, Height: 225}
		c.Params.PathAmplitude = 30
		c.Params.Size = 6
	},
}

// GetPreset returns a fresh config with the named preset applied to the
// defaults, or nil when no such preset exists.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Apply layers the named preset over c.
func (c *Config) Apply(name string) error {
	apply, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, ListPresets())
	}
	apply(c)
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"fmt"
	"sort"
	"time"
)

var Presets = map[string]*AnimationConfig{
	"default": {
		CounterDuration: DefaultCounterDuration, TickInterval: DefaultTickInterval,
		RevealDuration: DefaultRevealDuration, FrameRate: DefaultFrameRate, ScrollThreshold: DefaultScrollThreshold,
	},
	"snappy": {
		CounterDuration: 600 * time.Millisecond, TickInterval: 16 * time.Millisecond,
		RevealDuration: 800 * time.Millisecond, FrameRate: 60, ScrollThreshold: 2,
	},
	"cinematic": {
		CounterDuration: 3 * time.Second, TickInterval: 16 * time.Millisecond,
		RevealDuration: 4 * time.Second, FrameRate: 60, ScrollThreshold: 5,
	},
	// reduced finishes every counter in one tick for reduced-motion terminals.
	"reduced": {
		CounterDuration: 16 * time.Millisecond, TickInterval: 16 * time.Millisecond,
		RevealDuration: 16 * time.Millisecond, FrameRate: 60, ScrollThreshold: DefaultScrollThreshold,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *AnimationConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the animation timings with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c.Animation = *p
	return nil
}

package viz

import (
	"github.com/jonboulle/clockwork"

	"github.com/san-kum/neurospark/internal/config"
	"github.com/san-kum/neurospark/internal/fleet"
)

// Options configures the screens. Zero fields take defaults: the current
// theme, the default animation timings and the real clock.
type Options struct {
	Fixtures  *fleet.Fixtures
	Animation config.AnimationConfig
	Theme     Theme
	Clock     clockwork.Clock
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Theme.Name == "" {
		o.Theme = CurrentTheme
	}
	if o.Animation == (config.AnimationConfig{}) {
		o.Animation = config.DefaultConfig().Animation
	}
	if o.Fixtures == nil {
		o.Fixtures = &fleet.Fixtures{}
	}
	return o
}

// FixturesMsg replaces the data shown on screen, typically after the
// fixture file changed on disk.
type FixturesMsg struct {
	Fixtures *fleet.Fixtures
}

type route int

const (
	routeLanding route = iota
	routeDashboard
)

func (r route) String() string {
	if r == routeDashboard {
		return "/dashboard"
	}
	return "/"
}

// navigateMsg asks the App to switch screens.
type navigateMsg struct {
	to route
}

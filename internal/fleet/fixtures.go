package fleet

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultDocument []byte

// Fixtures is the complete static data set behind both screens.
type Fixtures struct {
	Summary         Summary      `yaml:"summary" json:"summary"`
	KPIs            []KPI        `yaml:"kpis" json:"kpis"`
	Maintenance     Maintenance  `yaml:"maintenance" json:"maintenance"`
	EfficiencyTrend []TrendPoint `yaml:"efficiency_trend" json:"efficiency_trend"`
	WaterUsage      []WaterCycle `yaml:"water_usage" json:"water_usage"`
	Coverage        []Share      `yaml:"coverage" json:"coverage"`
	Alerts          []Alert      `yaml:"alerts" json:"alerts"`
	Robots          []Robot      `yaml:"robots" json:"robots"`
	Architecture    []string     `yaml:"architecture" json:"architecture"`
	Highlights      []Highlight  `yaml:"highlights" json:"highlights"`
	Landing         Landing      `yaml:"landing" json:"landing"`
}

// DefaultDocument returns a copy of the embedded fixture YAML.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Default parses the embedded fixtures.
func Default() (*Fixtures, error) {
	return Parse(defaultDocument)
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks enumerations, identifiers and ranges.
func (f *Fixtures) Validate() error {
	seen := make(map[int]bool, len(f.Robots))
	for i, r := range f.Robots {
		if !r.Status.Valid() {
			return fieldErr(ErrUnknownStatus, "robots[%d].status %q", i, r.Status)
		}
		if r.Battery < 0 || r.Battery > 100 {
			return fieldErr(ErrBatteryRange, "robots[%d].battery %d", i, r.Battery)
		}
		if seen[r.ID] {
			return fieldErr(ErrDuplicateRobot, "robots[%d].id %d", i, r.ID)
		}
		seen[r.ID] = true
	}
	for i, a := range f.Alerts {
		if !a.Severity.Valid() {
			return fieldErr(ErrUnknownSeverity, "alerts[%d].severity %q", i, a.Severity)
		}
	}
	for i, k := range f.KPIs {
		if k.Key == "" {
			return fieldErr(ErrEmptyKey, "kpis[%d].key", i)
		}
	}
	for i, m := range f.Landing.Metrics {
		if m.Name == "" {
			return fieldErr(ErrEmptyKey, "landing.metrics[%d].name", i)
		}
		switch m.Precision {
		case "", "whole", "tenths":
		default:
			return fieldErr(ErrUnknownPrecision, "landing.metrics[%d].precision %q", i, m.Precision)
		}
	}
	return nil
}

// KPI returns the card with the given key.
func (f *Fixtures) KPI(key string) (KPI, bool) {
	for _, k := range f.KPIs {
		if k.Key == key {
			return k, true
		}
	}
	return KPI{}, false
}

// Robot returns the robot with the given ID.
func (f *Fixtures) Robot(id int) (Robot, bool) {
	for _, r := range f.Robots {
		if r.ID == id {
			return r, true
		}
	}
	return Robot{}, false
}

// StatusCounts tallies the roster by status.
func (f *Fixtures) StatusCounts() map[Status]int {
	counts := make(map[Status]int)
	for _, r := range f.Robots {
		counts[r.Status]++
	}
	return counts
}

// AverageBattery is the mean battery level of the roster, or zero when empty.
func (f *Fixtures) AverageBattery() float64 {
	if len(f.Robots) == 0 {
		return 0
	}
	sum := 0
	for _, r := range f.Robots {
		sum += r.Battery
	}
	return float64(sum) / float64(len(f.Robots))
}

// AlertsBySeverity returns the alerts ordered from high to low severity,
// keeping document order within a severity.
func (f *Fixtures) AlertsBySeverity() []Alert {
	out := make([]Alert, len(f.Alerts))
	copy(out, f.Alerts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() > out[j].Severity.Rank()
	})
	return out
}

// Marshal renders the fixtures back to YAML.
func (f *Fixtures) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

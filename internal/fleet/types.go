package fleet

import (
	"strings"

	"github.com/san-kum/neurospark/internal/animate"
)

// Status is a robot's operating state.
type Status string

const (
	StatusActive   Status = "active"
	StatusCharging Status = "charging"
	StatusIdle     Status = "idle"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCharging, StatusIdle:
		return true
	}
	return false
}

// Severity ranks an alert.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) Valid() bool { return s.Rank() > 0 }

// Rank orders severities: high 3, medium 2, low 1, anything else 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

type Robot struct {
	ID       int    `yaml:"id" json:"id"`
	Status   Status `yaml:"status" json:"status"`
	Battery  int    `yaml:"battery" json:"battery"`
	Location string `yaml:"location" json:"location"`
	Cycles   int    `yaml:"cycles" json:"cycles"`
}

type Alert struct {
	ID       int      `yaml:"id" json:"id"`
	Kind     string   `yaml:"kind" json:"kind"`
	Severity Severity `yaml:"severity" json:"severity"`
	Age      string   `yaml:"age" json:"age"`
	Message  string   `yaml:"message" json:"message"`
}

type TrendPoint struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

type WaterCycle struct {
	Cycle  string  `yaml:"cycle" json:"cycle"`
	Liters float64 `yaml:"liters" json:"liters"`
	Time   string  `yaml:"time" json:"time"`
}

type Share struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// KPI is a dashboard card. Value and CaptionValue both count up when the
// dashboard opens.
type KPI struct {
	Key           string  `yaml:"key" json:"key"`
	Title         string  `yaml:"title" json:"title"`
	Value         float64 `yaml:"value" json:"value"`
	Suffix        string  `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	CaptionValue  float64 `yaml:"caption_value,omitempty" json:"caption_value,omitempty"`
	CaptionSuffix string  `yaml:"caption_suffix,omitempty" json:"caption_suffix,omitempty"`
	Caption       string  `yaml:"caption,omitempty" json:"caption,omitempty"`
	Note          string  `yaml:"note,omitempty" json:"note,omitempty"`
}

type Summary struct {
	Active         int    `yaml:"active" json:"active"`
	Charging       int    `yaml:"charging" json:"charging"`
	Idle           int    `yaml:"idle" json:"idle"`
	OnlineUnits    int    `yaml:"online_units" json:"online_units"`
	IssuesDetected int    `yaml:"issues_detected" json:"issues_detected"`
	SystemStatus   string `yaml:"system_status" json:"system_status"`
}

type Maintenance struct {
	Unit     string `yaml:"unit" json:"unit"`
	Detail   string `yaml:"detail" json:"detail"`
	Downtime string `yaml:"downtime" json:"downtime"`
}

type Highlight struct {
	Title   string `yaml:"title" json:"title"`
	Value   string `yaml:"value" json:"value"`
	Caption string `yaml:"caption" json:"caption"`
}

// LandingMetric is a number revealed when the metrics region scrolls into view.
type LandingMetric struct {
	Name      string  `yaml:"name" json:"name"`
	Label     string  `yaml:"label" json:"label"`
	Max       float64 `yaml:"max" json:"max"`
	Precision string  `yaml:"precision,omitempty" json:"precision,omitempty"`
	Unit      string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Metric converts the fixture entry for the reveal animation. Unknown
// precisions are rejected by Validate and fall back to whole numbers here.
func (m LandingMetric) Metric() animate.Metric {
	p := animate.Whole
	if strings.EqualFold(m.Precision, animate.Tenths.String()) {
		p = animate.Tenths
	}
	return animate.Metric{Name: m.Name, Max: m.Max, Precision: p}
}

type Card struct {
	Title  string `yaml:"title" json:"title"`
	Text   string `yaml:"text" json:"text"`
	Metric string `yaml:"metric,omitempty" json:"metric,omitempty"`
	Icon   string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

type Spec struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Note  string `yaml:"note,omitempty" json:"note,omitempty"`
}

type Deployment struct {
	Label string `yaml:"label" json:"label"`
	Units string `yaml:"units" json:"units"`
	Fill  int    `yaml:"fill" json:"fill"`
}

type Landing struct {
	MetricsRegion string          `yaml:"metrics_region" json:"metrics_region"`
	Metrics       []LandingMetric `yaml:"metrics" json:"metrics"`
	Challenges    []Card          `yaml:"challenges" json:"challenges"`
	Features      []Card          `yaml:"features" json:"features"`
	Specs         []Spec          `yaml:"specs" json:"specs"`
	Operations    []Card          `yaml:"operations" json:"operations"`
	Scale         []Card          `yaml:"scale" json:"scale"`
	Deployments   []Deployment    `yaml:"deployments" json:"deployments"`
	Economics     []Spec          `yaml:"economics" json:"economics"`
}

// AnimatedMetrics returns the landing metrics in reveal form.
func (l Landing) AnimatedMetrics() []animate.Metric {
	out := make([]animate.Metric, len(l.Metrics))
	for i, m := range l.Metrics {
		out[i] = m.Metric()
	}
	return out
}

package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatPlot  Format = "plot"
	FormatSVG   Format = "svg"
)

func Formats() []Format {
	return []Format{FormatTable, FormatCSV, FormatJSON, FormatPlot, FormatSVG}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Trace is a recorded animation, one point per emitted frame.
type Trace struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"-"`
	Interval time.Duration `json:"-"`
	Columns  []string      `json:"columns"`
	Points   []Point       `json:"points"`
}

type Point struct {
	Step    int           `json:"step"`
	Elapsed time.Duration `json:"-"`
	Values  []float64     `json:"values"`
}

func NewTrace(name string, duration, interval time.Duration, columns ...string) *Trace {
	return &Trace{
		Name:     name,
		Duration: duration,
		Interval: interval,
		Columns:  columns,
	}
}

// Add records one frame. values must line up with Columns.
func (t *Trace) Add(elapsed time.Duration, values ...float64) {
	t.Points = append(t.Points, Point{
		Step:    len(t.Points),
		Elapsed: elapsed,
		Values:  values,
	})
}

func (t *Trace) Len() int { return len(t.Points) }

// Series returns the values of one column across all points.
func (t *Trace) Series(col int) []float64 {
	out := make([]float64, 0, len(t.Points))
	for _, p := range t.Points {
		if col < len(p.Values) {
			out = append(out, p.Values[col])
		}
	}
	return out
}

// Final returns the last point's values, or nil for an empty trace.
func (t *Trace) Final() []float64 {
	if len(t.Points) == 0 {
		return nil
	}
	return t.Points[len(t.Points)-1].Values
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

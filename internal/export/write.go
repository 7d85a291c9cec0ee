package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
)

// Write renders t in the given format.
func Write(w io.Writer, format Format, t *Trace) error {
	switch format {
	case FormatTable:
		return WriteTable(w, t)
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatPlot:
		_, err := io.WriteString(w, Plot(t, 12, 72)+"\n")
		return err
	case FormatSVG:
		_, err := io.WriteString(w, SVG(t, 640, 320)+"\n")
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func WriteTable(w io.Writer, t *Trace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := append([]string{"STEP", "ELAPSED"}, upper(t.Columns)...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, p := range t.Points {
		row := []string{strconv.Itoa(p.Step), p.Elapsed.String()}
		for _, v := range p.Values {
			row = append(row, formatValue(v))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

func upper(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.ToUpper(c)
	}
	return out
}

func WriteCSV(w io.Writer, t *Trace) error {
	cw := csv.NewWriter(w)

	header := append([]string{"step", "elapsed_ms"}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range t.Points {
		row := []string{strconv.Itoa(p.Step), formatValue(millis(p.Elapsed))}
		for _, v := range p.Values {
			row = append(row, formatValue(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type jsonPoint struct {
	Step      int       `json:"step"`
	ElapsedMs float64   `json:"elapsed_ms"`
	Values    []float64 `json:"values"`
}

type jsonTrace struct {
	Name       string      `json:"name"`
	DurationMs float64     `json:"duration_ms"`
	IntervalMs float64     `json:"interval_ms"`
	Steps      int         `json:"steps"`
	Columns    []string    `json:"columns"`
	Final      []float64   `json:"final"`
	Points     []jsonPoint `json:"points"`
}

func WriteJSON(w io.Writer, t *Trace) error {
	data := jsonTrace{
		Name:       t.Name,
		DurationMs: millis(t.Duration),
		IntervalMs: millis(t.Interval),
		Steps:      len(t.Points),
		Columns:    t.Columns,
		Final:      t.Final(),
		Points:     make([]jsonPoint, len(t.Points)),
	}
	for i, p := range t.Points {
		data.Points[i] = jsonPoint{Step: p.Step, ElapsedMs: millis(p.Elapsed), Values: p.Values}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Plot draws every column of t as one asciigraph chart.
func Plot(t *Trace, height, width int) string {
	series := make([][]float64, 0, len(t.Columns))
	for i := range t.Columns {
		if s := t.Series(i); len(s) > 0 {
			series = append(series, s)
		}
	}
	if len(series) == 0 {
		return ""
	}

	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("%s: %s", t.Name, strings.Join(t.Columns, ", "))),
	}
	if len(series) > 1 {
		opts = append(opts, asciigraph.SeriesColors(colors[:min(len(series), len(colors))]...))
	}
	return asciigraph.PlotMany(series, opts...)
}

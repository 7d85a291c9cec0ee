package export

import (
	"fmt"
	"strings"
)

var strokes = []string{"#00d4ff", "#ff6ec7", "#ffd166", "#06d6a0"}

// SVG draws each column of t as a polyline over elapsed time. A column with a
// single sample is drawn as a dot. An empty trace gives an empty canvas.
func SVG(t *Trace, width, height int) string {
	var minX, maxX float64
	if len(t.Points) > 0 {
		minX, maxX = millis(t.Points[0].Elapsed), millis(t.Points[0].Elapsed)
	}
	minY, maxY := 0.0, 0.0
	for _, p := range t.Points {
		x := millis(p.Elapsed)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		for _, v := range p.Values {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for col, name := range t.Columns {
		stroke := strokes[col%len(strokes)]

		var d strings.Builder
		n := 0
		var x, y float64
		for _, p := range t.Points {
			if col >= len(p.Values) {
				continue
			}
			x = (millis(p.Elapsed) - minX) / rangeX * float64(width)
			y = float64(height) - (p.Values[col]-minY)/rangeY*float64(height)

			if n == 0 {
				d.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				d.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
			n++
		}
		if n == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf(`<path data-series="%s" fill="none" stroke="%s" stroke-width="1.5" d="%s"/>`+"\n", name, stroke, d.String()))
		if n == 1 {
			sb.WriteString(fmt.Sprintf(`<circle data-series="%s" cx="%.1f" cy="%.1f" r="2" fill="%s"/>`+"\n", name, x, y, stroke))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bitplane/internal/plane"
)

// PlaneToSVG draws each live cell of a one- or two-dimensional plane as a
// square of side scale.
func PlaneToSVG(p *plane.Plane, scale float64, fill string) (string, error) {
	d := p.Materialize()

	var rows, cols int
	switch len(d.Shape) {
	case 1:
		rows, cols = 1, d.Shape[0]
	case 2:
		rows, cols = d.Shape[0], d.Shape[1]
	default:
		return "", fmt.Errorf("export: cannot draw %d-dimensional plane %v", len(d.Shape), d.Shape)
	}

	width := float64(cols) * scale
	height := float64(rows) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fill))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !d.Cells[y*cols+x] {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String(), nil
}

// PopulationToSVG draws a population history as a polyline.
func PopulationToSVG(population []int, width, height int, strokeColor string) string {
	if len(population) < 2 {
		return ""
	}

	maxPop := 0
	for _, p := range population {
		if p > maxPop {
			maxPop = p
		}
	}
	if maxPop == 0 {
		maxPop = 1
	}
	stepX := float64(width) / float64(len(population)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range population {
		x := float64(i) * stepX
		y := float64(height) - float64(p)/float64(maxPop)*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bitplane/internal/plane"
)

// Project returns a view of p with at most two dimensions. For planes with
// more, slice fixes the leading axes; an empty slice picks index 0 on each.
func Project(p *plane.Plane, slice []int) (*plane.Plane, error) {
	if p.Dims() <= 2 && len(slice) == 0 {
		return p, nil
	}
	if len(slice) == 0 {
		slice = make([]int, p.Dims()-2)
	}
	v, err := p.View(plane.Tuple(slice...))
	if err != nil {
		return nil, err
	}
	if v.Dims() > 2 {
		return nil, fmt.Errorf("viz: slice %v leaves %d dimensions, need at most 2", slice, v.Dims())
	}
	return v, nil
}

// Draw plots a one- or two-dimensional plane onto a new canvas. Row y of
// the plane becomes dot row y.
func Draw(p *plane.Plane) (*Canvas, error) {
	d := p.Materialize()
	switch len(d.Shape) {
	case 1:
		c := CanvasFor(d.Shape[0], 1)
		for x, alive := range d.Cells {
			if alive {
				c.Set(x, 0)
			}
		}
		return c, nil
	case 2:
		h, w := d.Shape[0], d.Shape[1]
		c := CanvasFor(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if d.Cells[y*w+x] {
					c.Set(x, y)
				}
			}
		}
		return c, nil
	}
	return nil, fmt.Errorf("viz: cannot draw %d-dimensional plane %v", len(d.Shape), d.Shape)
}

// RenderPlane draws p in the theme's cell color.
func RenderPlane(p *plane.Plane, theme Theme) (string, error) {
	c, err := Draw(p)
	if err != nil {
		return "", err
	}
	return lipgloss.NewStyle().Foreground(theme.Alive).Render(c.String()), nil
}

// History records successive states of a one-dimensional plane so they can
// be drawn as a space-time diagram.
type History struct {
	rows  []*plane.Row
	limit int
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push appends a copy of r, dropping the oldest entry past the limit.
func (h *History) Push(r *plane.Row) {
	h.rows = append(h.rows, r.Clone())
	if h.limit > 0 && len(h.rows) > h.limit {
		h.rows = h.rows[1:]
	}
}

func (h *History) Len() int { return len(h.rows) }

// RenderHistory draws each recorded row as one dot row, oldest on top.
func RenderHistory(h *History, theme Theme) string {
	if len(h.rows) == 0 {
		return ""
	}
	width := h.rows[0].Len()
	c := CanvasFor(width, len(h.rows))
	for y, r := range h.rows {
		for x := 0; x < r.Len(); x++ {
			if r.Test(x) {
				c.Set(x, y)
			}
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Alive).Render(c.String())
}

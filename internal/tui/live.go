package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/bitplane/internal/automaton"
	"github.com/san-kum/bitplane/internal/plane"
	"github.com/san-kum/bitplane/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is an automaton observer that redraws the plane to out at
// most frameRate times per second.
type LiveRenderer struct {
	out       io.Writer
	plane     *plane.Plane
	slice     []int
	theme     viz.Theme
	frameRate int
	lastFrame time.Time
	history   *viz.History
}

func NewLiveRenderer(out io.Writer, p *plane.Plane, slice []int, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 15
	}
	r := &LiveRenderer{
		out:       out,
		plane:     p,
		slice:     slice,
		theme:     viz.ThemeRetroGreen,
		frameRate: frameRate,
	}
	if p.Dims() == 1 {
		r.history = viz.NewHistory(64)
	}
	return r
}

func (r *LiveRenderer) OnStep(s automaton.Snapshot) {
	if r.history != nil {
		row, err := r.plane.Row(0)
		if err == nil {
			r.history.Push(row)
		}
	}

	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	frame, err := Frame(r.plane, r.slice, r.history, r.theme)
	if err != nil {
		fmt.Fprintf(r.out, "render: %v\n", err)
		return
	}
	fmt.Fprint(r.out, clearScreen+hideCursor)
	fmt.Fprintln(r.out, frame)
	fmt.Fprintf(r.out, "%s  %s\n",
		viz.Metric("gen", s.Generation),
		viz.Metric("pop", s.Population))
}

// Close restores the cursor.
func (r *LiveRenderer) Close() {
	fmt.Fprint(r.out, showCursor)
}

// Frame renders the current state of p: a space-time diagram when history
// is given, otherwise the two-dimensional projection picked by slice.
func Frame(p *plane.Plane, slice []int, history *viz.History, theme viz.Theme) (string, error) {
	if history != nil && history.Len() > 0 {
		return viz.RenderHistory(history, theme), nil
	}
	v, err := viz.Project(p, slice)
	if err != nil {
		return "", err
	}
	return viz.RenderPlane(v, theme)
}

package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/bitplane/internal/plane"
)

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(3, 2)
	if !c.IsSet(3, 2) {
		t.Fatal("dot not set")
	}
	if c.Grid[0][1] != brailleBlank|0x20 {
		t.Errorf("unexpected rune %U", c.Grid[0][1])
	}
	c.Unset(3, 2)
	if c.IsSet(3, 2) || c.Grid[0][1] != brailleBlank {
		t.Error("dot not cleared")
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	if c.String() != strings.Repeat(string(rune(brailleBlank)), 2)+"\n" {
		t.Errorf("out of range writes changed canvas: %q", c.String())
	}
}

func TestCanvasFor(t *testing.T) {
	c := CanvasFor(5, 9)
	if c.Width != 3 || c.Height != 3 {
		t.Errorf("canvas %dx%d, want 3x3", c.Width, c.Height)
	}
}

func TestDraw_TwoDimensional(t *testing.T) {
	p, _ := plane.New(4, 6)
	_ = p.Set([]int{3, 5}, 1)
	_ = p.Set([]int{0, 0}, 1)

	c, err := Draw(p)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsSet(5, 3) || !c.IsSet(0, 0) {
		t.Error("live cells not drawn")
	}
	if c.IsSet(1, 1) {
		t.Error("dead cell drawn")
	}
}

func TestDraw_TooManyDims(t *testing.T) {
	p, _ := plane.New(2, 2, 2)
	if _, err := Draw(p); err == nil {
		t.Error("expected error for 3-d plane")
	}
}

func TestProject(t *testing.T) {
	p, _ := plane.New(3, 4, 5)
	_ = p.Set([]int{2, 1, 1}, 1)

	v, err := Project(p, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	if !v.Shape().Equal(plane.Shape{4, 5}) {
		t.Fatalf("shape = %v", v.Shape())
	}
	if v.Population() != 1 {
		t.Error("projection does not alias the plane")
	}

	v, err = Project(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Population() != 0 {
		t.Error("default projection should pick index 0")
	}

	p4, _ := plane.New(2, 2, 2, 2)
	if _, err := Project(p4, []int{0}); err == nil {
		t.Error("expected error when projection leaves three dimensions")
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(2)
	r, _ := plane.ParseRow("1000")
	h.Push(r)
	r.Set(1, 1)
	h.Push(r)
	h.Push(r)
	if h.Len() != 2 {
		t.Errorf("len = %d, want 2", h.Len())
	}
	if out := RenderHistory(h, ThemeMinimal); out == "" {
		t.Error("empty render")
	}
}

func TestPopulationGraph(t *testing.T) {
	if PopulationGraph(nil, 40, 5, "") != "" {
		t.Error("expected empty graph for no data")
	}
	out := PopulationGraph([]int{1, 4, 2, 8}, 40, 5, "population")
	if !strings.Contains(out, "population") {
		t.Error("caption missing")
	}
}

func TestNextTheme(t *testing.T) {
	if NextTheme(ThemeRetroGreen).Name != ThemeCyberpunk.Name {
		t.Error("unexpected theme order")
	}
	if NextTheme(Theme{Name: "unknown"}).Name != Themes[0].Name {
		t.Error("unknown theme should reset to first")
	}
}

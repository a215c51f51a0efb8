package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bitplane/internal/automaton"
	"github.com/san-kum/bitplane/internal/plane"
	"github.com/san-kum/bitplane/internal/rule"
)

func newModel(t *testing.T, shape ...int) Model {
	t.Helper()
	p, err := plane.New(shape...)
	if err != nil {
		t.Fatal(err)
	}
	r, _ := rule.Lookup("life")
	a, err := automaton.New(p, r, nil)
	if err != nil {
		t.Fatal(err)
	}
	a.Randomize(1)
	return NewModel(a, 1, nil, 30)
}

func TestModel_TickSteps(t *testing.T) {
	m := newModel(t, 8, 8)
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule another tick")
	}
	if next.(Model).auto.Generation() != 1 {
		t.Errorf("generation = %d, want 1", next.(Model).auto.Generation())
	}
}

func TestModel_Pause(t *testing.T) {
	m := newModel(t, 8, 8)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	paused := next.(Model)
	if paused.running {
		t.Fatal("space should pause")
	}

	next, _ = paused.Update(TickMsg(time.Now()))
	if next.(Model).auto.Generation() != 0 {
		t.Error("paused model stepped on tick")
	}

	next, _ = paused.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if next.(Model).auto.Generation() != 1 {
		t.Error("n should step once")
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(t, 8, 16)
	out := m.View()
	if !strings.Contains(out, "life") || !strings.Contains(out, "B3/S23") {
		t.Errorf("view missing rule: %s", out)
	}
}

func TestModel_OneDimensionalHistory(t *testing.T) {
	m := newModel(t, 32)
	for i := 0; i < 3; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	if m.history.Len() != 4 {
		t.Errorf("history has %d rows, want 4", m.history.Len())
	}
}

func TestLiveRenderer(t *testing.T) {
	p, _ := plane.New(4, 8)
	p.Fill(1)
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, p, nil, 1000)
	r.OnStep(automaton.Snapshot{Generation: 3, Population: 32})
	r.Close()

	out := buf.String()
	if !strings.Contains(out, "gen") || !strings.Contains(out, "3") {
		t.Errorf("missing status line: %q", out)
	}
	if !strings.HasSuffix(out, showCursor) {
		t.Error("cursor not restored")
	}
}

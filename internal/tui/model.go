// Package tui runs an automaton in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bitplane/internal/automaton"
	"github.com/san-kum/bitplane/internal/viz"
)

type TickMsg time.Time

// Model is a Bubble Tea model that steps an automaton on every tick.
type Model struct {
	auto       *automaton.Automaton
	slice      []int
	seed       int64
	interval   time.Duration
	running    bool
	theme      viz.Theme
	history    *viz.History
	population []int
	err        error
}

func NewModel(a *automaton.Automaton, seed int64, slice []int, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 15
	}
	m := Model{
		auto:     a,
		slice:    slice,
		seed:     seed,
		interval: time.Second / time.Duration(frameRate),
		running:  true,
		theme:    viz.ThemeRetroGreen,
	}
	m.resetHistory()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.step()
		case "r":
			m.seed++
			m.auto.Randomize(m.seed)
			m.resetHistory()
		case "t":
			m.theme = viz.NextTheme(m.theme)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	if _, err := m.auto.Step(); err != nil {
		m.err = err
		m.running = false
		return
	}
	m.record()
}

func (m *Model) record() {
	p := m.auto.Plane()
	m.population = append(m.population, p.Population())
	if len(m.population) > 200 {
		m.population = m.population[1:]
	}
	if m.history != nil {
		if row, err := p.Row(0); err == nil {
			m.history.Push(row)
		}
	}
}

func (m *Model) resetHistory() {
	m.population = nil
	m.history = nil
	if m.auto.Plane().Dims() == 1 {
		m.history = viz.NewHistory(64)
	}
	m.record()
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("ruleset  %v", m.auto.Plane().Shape())
	if r := m.auto.Rule(); r != nil {
		title = fmt.Sprintf("%s %s  %v", r.Name, r.String(), m.auto.Plane().Shape())
	}

	frame, err := Frame(m.auto.Plane(), m.slice, m.history, m.theme)
	if err != nil {
		frame = err.Error()
	}
	b.WriteString(viz.Framed(m.theme, title, frame))
	b.WriteString("\n")

	status := viz.StatusRunning.Render("running")
	if !m.running {
		status = viz.StatusPaused.Render("paused")
	}
	pop := 0
	if len(m.population) > 0 {
		pop = m.population[len(m.population)-1]
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		status,
		viz.Metric("gen", m.auto.Generation()),
		viz.Metric("pop", pop),
		viz.Metric("seed", m.seed)))

	if len(m.population) > 1 {
		b.WriteString(viz.PopulationGraph(m.population, 60, 6, "population"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(viz.StatusPaused.Render(m.err.Error()) + "\n")
	}
	b.WriteString(viz.KeyHint.Render("space pause  n step  r reseed  t theme  q quit"))
	return b.String()
}

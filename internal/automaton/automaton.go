// Package automaton steps a plane forward under a life-like rule.
package automaton

import (
	"context"
	"fmt"

	"github.com/san-kum/bitplane/internal/neighborhood"
	"github.com/san-kum/bitplane/internal/plane"
	"github.com/san-kum/bitplane/internal/rule"
)

// Automaton applies a rule to every cell of a plane at once. The plane's
// rows are rewritten in place each generation, so views taken from it stay
// valid and follow the simulation.
type Automaton struct {
	rule    *rule.Rule
	hood    *neighborhood.Neighborhood
	ruleset *Ruleset
	current *plane.Plane
	next    *plane.Plane
	addrs   [][]neighborhood.Address
	// configAddrs and scratch serve ruleset-driven automata.
	configAddrs [][][]neighborhood.Address
	scratch     []plane.Bit
	generation  int
	metrics     []Metric
	observers   []Observer
}

// New builds an automaton over p. A nil neighborhood means Moore.
func New(p *plane.Plane, r *rule.Rule, hood *neighborhood.Neighborhood) (*Automaton, error) {
	if p.Dims() == 0 {
		return nil, fmt.Errorf("automaton: plane has no dimensions")
	}
	if r == nil {
		return nil, fmt.Errorf("automaton: rule is required")
	}
	if hood == nil {
		hood = neighborhood.New(neighborhood.Moore(p.Dims()))
	}
	next, err := plane.New(p.Shape()...)
	if err != nil {
		return nil, err
	}
	return &Automaton{
		rule:      r,
		hood:      hood,
		current:   p,
		next:      next,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (a *Automaton) AddMetric(m Metric)     { a.metrics = append(a.metrics, m) }
func (a *Automaton) AddObserver(o Observer) { a.observers = append(a.observers, o) }

func (a *Automaton) Plane() *plane.Plane { return a.current }
func (a *Automaton) Generation() int     { return a.generation }

// Rule is nil for an automaton built with NewConfigured.
func (a *Automaton) Rule() *rule.Rule  { return a.rule }
func (a *Automaton) Ruleset() *Ruleset { return a.ruleset }

// Randomize reseeds the plane and resets the generation counter.
func (a *Automaton) Randomize(seed int64) {
	a.current.Randomize(plane.NewRand(seed))
	a.generation = 0
}

// Step advances one generation and returns how many cells changed.
func (a *Automaton) Step() (int, error) {
	if a.addrs == nil && a.configAddrs == nil {
		if err := a.precompute(); err != nil {
			return 0, &StepError{Generation: a.generation, Wrapped: err}
		}
	}

	width := a.current.Width()
	changed := 0
	for i := 0; i < a.current.Rows(); i++ {
		src, err := a.current.Row(i)
		if err != nil {
			return 0, &StepError{Generation: a.generation, Wrapped: err}
		}
		dst, _ := a.next.Row(i)
		for off := 0; off < width; off++ {
			alive := src.Test(off)
			next, err := a.nextState(i*width+off, alive)
			if err != nil {
				return 0, &StepError{Generation: a.generation, Wrapped: err}
			}
			if next != alive {
				changed++
			}
			dst.Set(off, plane.BitOf(next))
		}
	}

	for i := 0; i < a.current.Rows(); i++ {
		src, _ := a.next.Row(i)
		dst, _ := a.current.Row(i)
		if err := dst.CopyFrom(src); err != nil {
			return 0, &StepError{Generation: a.generation, Wrapped: err}
		}
	}
	a.generation++
	return changed, nil
}

func (a *Automaton) nextState(cell int, alive bool) (bool, error) {
	if a.ruleset != nil {
		return a.nextConfigured(cell, alive)
	}
	total, err := neighborhood.Count(a.current, a.addrs[cell])
	if err != nil {
		return false, err
	}
	return a.rule.Next(alive, total), nil
}

func (a *Automaton) precompute() error {
	if a.ruleset != nil {
		return a.precomputeRuleset()
	}
	width := a.current.Width()
	rows := a.current.Rows()
	addrs := make([][]neighborhood.Address, rows*width)
	for i := 0; i < rows; i++ {
		for off := 0; off < width; off++ {
			coord, err := a.current.Unflatten(i, off)
			if err != nil {
				return err
			}
			cell, err := a.hood.Addresses(a.current, coord)
			if err != nil {
				return err
			}
			addrs[i*width+off] = cell
		}
	}
	a.addrs = addrs
	return nil
}

func (a *Automaton) snapshot(changed int) Snapshot {
	return Snapshot{
		Generation: a.generation,
		Population: a.current.Population(),
		Changed:    changed,
		Size:       a.current.Shape().Size(),
	}
}

// Run advances cfg.Generations generations, checking ctx between them.
func (a *Automaton) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Randomize {
		a.Randomize(cfg.Seed)
	}

	result := &Result{
		Population: make([]int, 0, cfg.Generations+1),
		Changed:    make([]int, 0, cfg.Generations),
		Metrics:    make(map[string]float64),
	}

	for _, m := range a.metrics {
		m.Reset()
	}

	snap := a.snapshot(0)
	result.Population = append(result.Population, snap.Population)
	a.observe(snap)

	for i := 0; i < cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			a.collect(result)
			return result, ctx.Err()
		default:
		}

		changed, err := a.Step()
		if err != nil {
			a.collect(result)
			return result, err
		}
		result.Generations++

		snap := a.snapshot(changed)
		result.Population = append(result.Population, snap.Population)
		result.Changed = append(result.Changed, changed)
		a.observe(snap)
	}

	a.collect(result)
	return result, nil
}

// collect records the current metric values, including for a run cut short.
func (a *Automaton) collect(result *Result) {
	for _, m := range a.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// RunWithCallback steps until cfg.Generations is reached, ctx is done, or
// callback returns false.
func (a *Automaton) RunWithCallback(ctx context.Context, cfg Config, callback func(p *plane.Plane, s Snapshot) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if cfg.Randomize {
		a.Randomize(cfg.Seed)
	}

	changed := 0
	for i := 0; i <= cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(a.current, a.snapshot(changed)) || i == cfg.Generations {
			return nil
		}

		var err error
		if changed, err = a.Step(); err != nil {
			return err
		}
	}

	return nil
}

func (a *Automaton) observe(s Snapshot) {
	for _, m := range a.metrics {
		m.Observe(s)
	}
	for _, o := range a.observers {
		o.OnStep(s)
	}
}

func validateConfig(cfg Config) error {
	if cfg.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	return nil
}

package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/bitplane/internal/automaton"
	"github.com/san-kum/bitplane/internal/config"
	"github.com/san-kum/bitplane/internal/neighborhood"
	"github.com/san-kum/bitplane/internal/plane"
	"github.com/san-kum/bitplane/internal/rule"
)

// Registry resolves the names used in configurations to neighborhoods and
// metrics, and builds automata from a configuration.
type Registry struct {
	neighborhoods map[string]func(dims int) []neighborhood.Offset
	metrics       map[string]func() automaton.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		neighborhoods: make(map[string]func(int) []neighborhood.Offset),
		metrics:       make(map[string]func() automaton.Metric),
	}

	r.neighborhoods["moore"] = neighborhood.Moore
	r.neighborhoods["vonneumann"] = neighborhood.VonNeumann

	r.metrics["population"] = func() automaton.Metric { return automaton.NewPopulation() }
	r.metrics["peak_density"] = func() automaton.Metric { return automaton.NewPeakDensity() }
	r.metrics["activity"] = func() automaton.Metric { return automaton.NewActivity() }

	return r
}

func (r *Registry) GetNeighborhood(name string, dims int) (*neighborhood.Neighborhood, error) {
	fn, ok := r.neighborhoods[name]
	if !ok {
		return nil, fmt.Errorf("unknown neighborhood: %s", name)
	}
	return neighborhood.New(fn(dims)), nil
}

func (r *Registry) GetMetric(name string) (automaton.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListNeighborhoods() []string {
	return sortedKeys(r.neighborhoods)
}

func (r *Registry) ListMetrics() []string {
	return sortedKeys(r.metrics)
}

// Build creates a zeroed plane of cfg.Shape and an automaton over it with
// every registered metric attached.
func (r *Registry) Build(cfg *config.Config) (*automaton.Automaton, error) {
	ru, err := rule.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	p, err := plane.New(cfg.Shape...)
	if err != nil {
		return nil, err
	}
	hood, err := r.GetNeighborhood(cfg.Neighborhood, p.Dims())
	if err != nil {
		return nil, err
	}

	a, err := automaton.New(p, ru, hood)
	if err != nil {
		return nil, err
	}
	for _, name := range r.ListMetrics() {
		m, _ := r.GetMetric(name)
		a.AddMetric(m)
	}
	return a, nil
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package automaton

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Factory builds a fresh automaton with its own plane.
type Factory func() (*Automaton, error)

// Ensemble runs independent automata with consecutive seeds in parallel.
// Every run builds its own plane, so no storage is shared between goroutines.
type Ensemble struct {
	factory   Factory
	numRuns   int
	seedStart int64
	workers   int
}

func NewEnsemble(factory Factory, numRuns int, seedStart int64, workers int) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart, workers: workers}
}

// Run returns one result per seed, in seed order. The first error cancels
// the remaining runs.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	if e.workers > 0 {
		g.SetLimit(e.workers)
	}

	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			a, err := e.factory()
			if err != nil {
				return err
			}

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)
			cfgCopy.Randomize = true

			res, err := a.Run(ctx, cfgCopy)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

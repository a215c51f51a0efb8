package automaton

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/bitplane/internal/plane"
	"github.com/san-kum/bitplane/internal/rule"
)

func lifeFactory() (*Automaton, error) {
	p, err := plane.New(10, 10)
	if err != nil {
		return nil, err
	}
	a, err := New(p, rule.MustParse("B3/S23"), nil)
	if err != nil {
		return nil, err
	}
	a.AddMetric(NewPopulation())
	return a, nil
}

func TestEnsemble_Run(t *testing.T) {
	e := NewEnsemble(lifeFactory, 6, 100, 3)
	results, err := e.Run(context.Background(), Config{Generations: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}

	single, _ := lifeFactory()
	want, err := single.Run(context.Background(), Config{Generations: 5, Seed: 102, Randomize: true})
	if err != nil {
		t.Fatal(err)
	}
	got := results[2]
	for i := range want.Population {
		if got.Population[i] != want.Population[i] {
			t.Fatalf("seed 102 generation %d: ensemble %d, single %d", i, got.Population[i], want.Population[i])
		}
	}
}

func TestEnsemble_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	e := NewEnsemble(func() (*Automaton, error) { return nil, boom }, 3, 0, 0)
	if _, err := e.Run(context.Background(), Config{Generations: 1}); !errors.Is(err, boom) {
		t.Errorf("expected factory error, got %v", err)
	}
}

package automaton

import "fmt"

// Snapshot summarizes one generation for metrics and observers.
type Snapshot struct {
	Generation int
	Population int
	Changed    int
	Size       int
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Snapshot)
}

type Config struct {
	Generations int
	Seed        int64
	Randomize   bool
}

func DefaultConfig() Config {
	return Config{
		Generations: 100,
		Randomize:   true,
	}
}

type Result struct {
	Population  []int
	Changed     []int
	Metrics     map[string]float64
	Generations int
}

type StepError struct {
	Generation int
	Wrapped    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

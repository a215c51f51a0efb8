package automaton

import (
	"fmt"

	"github.com/san-kum/bitplane/internal/neighborhood"
	"github.com/san-kum/bitplane/internal/plane"
)

// MatchMode selects how a Configuration is compared to a cell's neighbors.
type MatchMode uint8

const (
	// MatchExact passes when every neighbor has its expected state.
	MatchExact MatchMode = iota
	// MatchTolerance passes when the fraction of neighbors in their
	// expected state is at least Tolerance.
	MatchTolerance
	// MatchFunc delegates the decision to Func.
	MatchFunc
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchTolerance:
		return "tolerance"
	case MatchFunc:
		return "func"
	}
	return fmt.Sprintf("MatchMode(%d)", uint8(m))
}

// MatchFn decides whether a configuration passes for a cell given the actual
// neighbor states and the expected ones, in offset order.
type MatchFn func(alive bool, actual, expected []plane.Bit) bool

// Configuration is an expected neighborhood and the state a cell takes when
// its neighbors pass the comparison.
type Configuration struct {
	Offsets   []neighborhood.Offset
	States    []plane.Bit
	Next      plane.Bit
	Mode      MatchMode
	Tolerance float64
	Func      MatchFn
}

func (c *Configuration) validate(dims int) error {
	if len(c.Offsets) != len(c.States) {
		return fmt.Errorf("configuration: %d offsets but %d states", len(c.Offsets), len(c.States))
	}
	for _, off := range c.Offsets {
		if len(off) != dims {
			return fmt.Errorf("configuration: offset %v does not match %d dimensions", off, dims)
		}
	}
	switch c.Mode {
	case MatchExact:
	case MatchTolerance:
		if c.Tolerance < 0 || c.Tolerance > 1 {
			return fmt.Errorf("configuration: tolerance %v outside [0, 1]", c.Tolerance)
		}
	case MatchFunc:
		if c.Func == nil {
			return fmt.Errorf("configuration: func mode needs a match function")
		}
	default:
		return fmt.Errorf("configuration: unknown mode %v", c.Mode)
	}
	return nil
}

func (c *Configuration) passes(p *plane.Plane, alive bool, addrs []neighborhood.Address, scratch []plane.Bit) (bool, error) {
	matches := 0
	for i, a := range addrs {
		row, err := p.Row(a.Row)
		if err != nil {
			return false, err
		}
		b := plane.BitOf(row.Test(a.Bit))
		switch c.Mode {
		case MatchExact:
			if b != c.States[i] {
				return false, nil
			}
		case MatchFunc:
			scratch[i] = b
		}
		if b == c.States[i] {
			matches++
		}
	}

	switch c.Mode {
	case MatchTolerance:
		if len(addrs) == 0 {
			return true, nil
		}
		return float64(matches)/float64(len(addrs)) >= c.Tolerance, nil
	case MatchFunc:
		return c.Func(alive, scratch[:len(addrs)], c.States), nil
	}
	return true, nil
}

// Ruleset is an ordered list of configurations. The first configuration
// that passes decides the next state of a cell. A cell no configuration
// passes for keeps its state.
type Ruleset struct {
	Configurations []Configuration
}

func NewRuleset(configs ...Configuration) *Ruleset {
	return &Ruleset{Configurations: configs}
}

// NewConfigured builds an automaton driven by a ruleset instead of a
// life-like rule.
func NewConfigured(p *plane.Plane, rs *Ruleset) (*Automaton, error) {
	if p.Dims() == 0 {
		return nil, fmt.Errorf("automaton: plane has no dimensions")
	}
	if rs == nil || len(rs.Configurations) == 0 {
		return nil, fmt.Errorf("automaton: ruleset needs at least one configuration")
	}
	for i := range rs.Configurations {
		if err := rs.Configurations[i].validate(p.Dims()); err != nil {
			return nil, fmt.Errorf("automaton: configuration %d: %w", i, err)
		}
	}
	next, err := plane.New(p.Shape()...)
	if err != nil {
		return nil, err
	}
	return &Automaton{
		ruleset:   rs,
		current:   p,
		next:      next,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

// precomputeRuleset resolves, for every cell, the addresses of each
// configuration's offsets.
func (a *Automaton) precomputeRuleset() error {
	width := a.current.Width()
	rows := a.current.Rows()
	hoods := make([]*neighborhood.Neighborhood, len(a.ruleset.Configurations))
	widest := 0
	for k, c := range a.ruleset.Configurations {
		hoods[k] = neighborhood.New(c.Offsets)
		widest = max(widest, len(c.Offsets))
	}

	addrs := make([][][]neighborhood.Address, rows*width)
	for i := 0; i < rows; i++ {
		for off := 0; off < width; off++ {
			coord, err := a.current.Unflatten(i, off)
			if err != nil {
				return err
			}
			cell := make([][]neighborhood.Address, len(hoods))
			for k, h := range hoods {
				if cell[k], err = h.Addresses(a.current, coord); err != nil {
					return err
				}
			}
			addrs[i*width+off] = cell
		}
	}
	a.configAddrs = addrs
	a.scratch = make([]plane.Bit, widest)
	return nil
}

func (a *Automaton) nextConfigured(cell int, alive bool) (bool, error) {
	for k := range a.ruleset.Configurations {
		c := &a.ruleset.Configurations[k]
		ok, err := c.passes(a.current, alive, a.configAddrs[cell][k], a.scratch)
		if err != nil {
			return false, err
		}
		if ok {
			return c.Next.Bool(), nil
		}
	}
	return alive, nil
}

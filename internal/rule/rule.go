// Package rule parses life-like rule notation into transition rules.
//
// Two notations are accepted:
//
//   - RLE "B<digits>/S<digits>", e.g. "B3/S23" for Conway's Life
//   - MCell "<survive>/<birth>", e.g. "23/3" for the same rule
//
// Digits in each half must be strictly ascending.
package rule

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidNotation indicates a rule string that is not valid RLE or MCell notation.
var ErrInvalidNotation = errors.New("rule: invalid notation")

var (
	rleFormat   = regexp.MustCompile(`^[Bb](\d*)/[Ss](\d*)$`)
	mcellFormat = regexp.MustCompile(`^(\d*)/(\d*)$`)
)

// Rule is an outer-totalistic transition: a dead cell is born when its live
// neighbor count is in Birth, a live cell survives when it is in Survive.
type Rule struct {
	Name    string
	Birth   map[int]bool
	Survive map[int]bool
}

// Parse reads a rule in RLE or MCell notation.
func Parse(notation string) (*Rule, error) {
	notation = strings.TrimSpace(notation)

	var birth, survive string
	switch {
	case rleFormat.MatchString(notation):
		m := rleFormat.FindStringSubmatch(notation)
		birth, survive = m[1], m[2]
	case mcellFormat.MatchString(notation):
		m := mcellFormat.FindStringSubmatch(notation)
		survive, birth = m[1], m[2]
	default:
		return nil, fmt.Errorf("%w: %q is neither B../S.. nor ../..", ErrInvalidNotation, notation)
	}

	b, err := digits(birth)
	if err != nil {
		return nil, fmt.Errorf("%w: birth %q in %q: %v", ErrInvalidNotation, birth, notation, err)
	}
	s, err := digits(survive)
	if err != nil {
		return nil, fmt.Errorf("%w: survival %q in %q: %v", ErrInvalidNotation, survive, notation, err)
	}

	return &Rule{Birth: b, Survive: s}, nil
}

// MustParse is like Parse but panics on error. Used for the named rule table.
func MustParse(notation string) *Rule {
	r, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return r
}

func digits(s string) (map[int]bool, error) {
	set := make(map[int]bool, len(s))
	prev := -1
	for _, c := range s {
		d := int(c - '0')
		if d <= prev {
			return nil, fmt.Errorf("digits not ascending")
		}
		set[d] = true
		prev = d
	}
	return set, nil
}

// Next returns the next state of a cell given its state and live neighbor count.
func (r *Rule) Next(alive bool, total int) bool {
	if alive {
		return r.Survive[total]
	}
	return r.Birth[total]
}

// String renders the rule in RLE notation.
func (r *Rule) String() string {
	return "B" + join(r.Birth) + "/S" + join(r.Survive)
}

func join(set map[int]bool) string {
	keys := make([]int, 0, len(set))
	for k, ok := range set {
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%d", k)
	}
	return b.String()
}

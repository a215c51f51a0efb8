package rule

import (
	"fmt"
	"sort"
)

var named = map[string]string{
	"life":               "B3/S23",
	"highlife":           "B36/S23",
	"seeds":              "B2/S",
	"life_without_death": "B3/S012345678",
	"replicator":         "B1357/S1357",
	"morley":             "B368/S245",
	"daynight":           "B3678/S34678",
}

// Lookup resolves a rule by name, falling back to parsing the argument as notation.
func Lookup(nameOrNotation string) (*Rule, error) {
	if notation, ok := named[nameOrNotation]; ok {
		r := MustParse(notation)
		r.Name = nameOrNotation
		return r, nil
	}
	r, err := Parse(nameOrNotation)
	if err != nil {
		return nil, fmt.Errorf("unknown rule %q: %w", nameOrNotation, err)
	}
	r.Name = r.String()
	return r, nil
}

// Names returns the named rules in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Notation returns the RLE notation of a named rule.
func Notation(name string) (string, bool) {
	n, ok := named[name]
	return n, ok
}

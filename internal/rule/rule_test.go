package rule

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		notation string
		want     string
	}{
		{"B3/S23", "B3/S23"},
		{"b36/s23", "B36/S23"},
		{"23/3", "B3/S23"},
		{"B2/S", "B2/S"},
		{"/3", "B3/S"},
		{"B3/S012345678", "B3/S012345678"},
	}

	for _, tt := range tests {
		r, err := Parse(tt.notation)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.notation, err)
			continue
		}
		if got := r.String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.notation, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, notation := range []string{"", "B3S23", "B32/S23", "33/3", "B3/S2a", "S23/B3", "life"} {
		if _, err := Parse(notation); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("Parse(%q): expected ErrInvalidNotation, got %v", notation, err)
		}
	}
}

func TestNext_Life(t *testing.T) {
	r := MustParse("B3/S23")
	tests := []struct {
		alive bool
		total int
		want  bool
	}{
		{false, 3, true},
		{false, 2, false},
		{true, 2, true},
		{true, 3, true},
		{true, 1, false},
		{true, 4, false},
	}

	for _, tt := range tests {
		if got := r.Next(tt.alive, tt.total); got != tt.want {
			t.Errorf("Next(%v, %d) = %v, want %v", tt.alive, tt.total, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("highlife")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "highlife" || r.String() != "B36/S23" {
		t.Errorf("got %s (%s)", r.Name, r)
	}

	r, err = Lookup("B1/S1")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "B1/S1" {
		t.Errorf("name = %s", r.Name)
	}

	if _, err := Lookup("nonexistent"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no named rules")
	}
	for _, n := range names {
		if _, err := Lookup(n); err != nil {
			t.Errorf("named rule %s does not parse: %v", n, err)
		}
	}
}

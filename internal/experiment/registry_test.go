package experiment

import (
	"testing"

	"github.com/san-kum/bitplane/internal/config"
)

func TestRegistry_Build(t *testing.T) {
	tests := []struct {
		name    string
		rule    string
		shape   []int
		hood    string
		wantErr bool
	}{
		{"life moore", "life", []int{8, 8}, "moore", false},
		{"notation vonneumann", "B1/S1", []int{4, 4, 4}, "vonneumann", false},
		{"one dimension", "B1/S", []int{16}, "moore", false},
		{"unknown rule", "nope", []int{8, 8}, "moore", true},
		{"unknown hood", "life", []int{8, 8}, "hex", true},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Rule = tt.rule
			cfg.Shape = tt.shape
			cfg.Neighborhood = tt.hood

			a, err := r.Build(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !a.Plane().Shape().Equal(tt.shape) {
				t.Errorf("shape = %v, want %v", a.Plane().Shape(), tt.shape)
			}
		})
	}
}

func TestRegistry_Lists(t *testing.T) {
	r := NewRegistry()
	hoods := r.ListNeighborhoods()
	if len(hoods) != 2 || hoods[0] != "moore" || hoods[1] != "vonneumann" {
		t.Errorf("neighborhoods = %v", hoods)
	}
	if len(r.ListMetrics()) != 3 {
		t.Errorf("metrics = %v", r.ListMetrics())
	}
	if _, err := r.GetMetric("energy"); err == nil {
		t.Error("expected unknown metric error")
	}
}

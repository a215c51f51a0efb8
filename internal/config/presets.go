package config

import "sort"

var Presets = map[string]map[string]*Config{
	"life": {
		"small": {
			Rule: "life", Shape: []int{24, 48}, Generations: 200, Seed: 1,
			Neighborhood: "moore", FrameRate: 15,
		},
		"large": {
			Rule: "life", Shape: []int{64, 128}, Generations: 500, Seed: 1,
			Neighborhood: "moore", FrameRate: 30,
		},
	},
	"highlife": {
		"small": {
			Rule: "highlife", Shape: []int{32, 64}, Generations: 300, Seed: 6,
			Neighborhood: "moore", FrameRate: 15,
		},
	},
	"seeds": {
		"burst": {
			Rule: "seeds", Shape: []int{32, 64}, Generations: 60, Seed: 2,
			Neighborhood: "moore", FrameRate: 10,
		},
	},
	"morley": {
		"small": {
			Rule: "morley", Shape: []int{32, 64}, Generations: 300, Seed: 3,
			Neighborhood: "moore", FrameRate: 15,
		},
	},
	"replicator": {
		"line": {
			Rule: "replicator", Shape: []int{128}, Generations: 64, Seed: 4,
			Neighborhood: "moore", FrameRate: 10,
		},
		"cube": {
			Rule: "replicator", Shape: []int{8, 16, 32}, Generations: 40, Seed: 4,
			Neighborhood: "vonneumann", FrameRate: 10, Slice: []int{4},
		},
	},
	"life_without_death": {
		"small": {
			Rule: "life_without_death", Shape: []int{32, 64}, Generations: 120, Seed: 5,
			Neighborhood: "moore", FrameRate: 15,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(rule, name string) *Config {
	byRule, ok := Presets[rule]
	if !ok {
		return nil
	}
	cfg, ok := byRule[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Shape = append([]int(nil), cfg.Shape...)
	c.Slice = append([]int(nil), cfg.Slice...)
	return &c
}

func ListPresets(rule string) []string {
	byRule, ok := Presets[rule]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byRule))
	for name := range byRule {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

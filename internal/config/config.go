package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRule         = "life"
	DefaultGenerations  = 100
	DefaultFrameRate    = 15
	DefaultNeighborhood = "moore"
)

var DefaultShape = []int{32, 64}

type Config struct {
	Rule         string `yaml:"rule"`
	Shape        []int  `yaml:"shape"`
	Generations  int    `yaml:"generations"`
	Seed         int64  `yaml:"seed"`
	Neighborhood string `yaml:"neighborhood"`
	FrameRate    int    `yaml:"frame_rate"`
	// Slice is the partial coordinate used to pick a 2-D view of a plane
	// with more than two dimensions for display.
	Slice []int `yaml:"slice,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Rule:         DefaultRule,
		Shape:        append([]int(nil), DefaultShape...),
		Generations:  DefaultGenerations,
		Neighborhood: DefaultNeighborhood,
		FrameRate:    DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Shape) == 0 {
		return fmt.Errorf("shape must have at least one dimension")
	}
	for i, d := range c.Shape {
		if d <= 0 {
			return fmt.Errorf("shape dimension %d must be positive, got %d", i, d)
		}
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	switch c.Neighborhood {
	case "moore", "vonneumann":
	default:
		return fmt.Errorf("unknown neighborhood %q", c.Neighborhood)
	}
	if len(c.Slice) > 0 && len(c.Slice) >= len(c.Shape) {
		return fmt.Errorf("slice %v must be shorter than shape %v", c.Slice, c.Shape)
	}
	return nil
}

// Package config loads server and solver defaults from an optional YAML
// file. Flags override whatever the file provides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/solver"
)

type Config struct {
	Addr   string `yaml:"addr"`
	Solver Solver `yaml:"solver"`
}

type Solver struct {
	Strategy      string `yaml:"strategy"`
	Depth         int    `yaml:"depth"`
	AllowNegative bool   `yaml:"allow_negative"`
	// ExactDivision is a pointer so an absent key keeps the classic
	// default of true.
	ExactDivision *bool `yaml:"exact_division"`
	Parallel      bool  `yaml:"parallel"`
}

func Default() Config {
	return Config{
		Addr: ":8080",
		Solver: Solver{
			Strategy: domain.StrategyBruteforce.String(),
			Depth:    solver.DefaultDepth,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Constraints converts the solver section to domain constraints.
func (s Solver) Constraints() domain.Constraints {
	c := domain.Classic()
	c.AllowNegative = s.AllowNegative
	if s.ExactDivision != nil {
		c.ExactDivision = *s.ExactDivision
	}
	return c
}

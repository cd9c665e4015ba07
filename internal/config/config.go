package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/solve"
	"github.com/san-kum/ropesim/internal/trajectory"
)

const (
	DefaultSamples      = 80
	DefaultShapeSamples = 200
	DefaultGravity      = rope.Gravity
)

// Config is one ropeway scenario plus sweep settings, loadable from yaml.
// Exactly one of TensionH and CounterweightMass needs to be set; with
// neither, the tension is derived from the rope length (the counterweight
// that lets a rope of length L hang through both anchors).
type Config struct {
	Span    float64 `yaml:"span"`
	Rise    float64 `yaml:"rise"`
	Length  float64 `yaml:"length"`
	Density float64 `yaml:"density"`
	Gravity float64 `yaml:"gravity"`

	GondolaMass       float64 `yaml:"gondola_mass"`
	CounterweightMass float64 `yaml:"counterweight_mass"`
	TensionH          float64 `yaml:"tension_h"`

	Samples       int     `yaml:"samples"`
	ShapeSamples  int     `yaml:"shape_samples"`
	Margin        float64 `yaml:"margin"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	OnFailure     string  `yaml:"on_failure"` // "abort" or "skip"
}

func DefaultConfig() *Config {
	return &Config{
		Span:         500,
		Rise:         50,
		Length:       520,
		Density:      2,
		Gravity:      DefaultGravity,
		GondolaMass:  500,
		Samples:      DefaultSamples,
		ShapeSamples: DefaultShapeSamples,
		OnFailure:    "abort",
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// System resolves the scenario into a solver-ready rope.System,
// deriving the horizontal tension when only a counterweight mass (or
// neither) is given.
func (c *Config) System() (rope.System, error) {
	s := rope.System{
		Span:        c.Span,
		Rise:        c.Rise,
		Length:      c.Length,
		Density:     c.Density,
		Gravity:     c.Gravity,
		GondolaMass: c.GondolaMass,
		TensionH:    c.TensionH,
	}
	if s.Gravity <= 0 {
		s.Gravity = DefaultGravity
	}
	if s.TensionH <= 0 && c.CounterweightMass > 0 {
		s.TensionH = c.CounterweightMass * s.Gravity
	}
	if s.TensionH <= 0 {
		th, err := s.UnloadedTension(solve.Options{Tol: c.Tolerance})
		if err != nil {
			return rope.System{}, fmt.Errorf("deriving counterweight tension: %w", err)
		}
		s.TensionH = th
	}
	return s, s.Validate()
}

// Sweep maps the scenario's sweep settings onto trajectory.Config.
func (c *Config) Sweep() (trajectory.Config, error) {
	sc := trajectory.DefaultConfig()
	if c.Samples > 0 {
		sc.Samples = c.Samples
	}
	if c.ShapeSamples > 0 {
		sc.ShapeSamples = c.ShapeSamples
	}
	sc.Margin = c.Margin
	if c.Tolerance > 0 {
		sc.Tol = c.Tolerance
	}
	if c.MaxIterations > 0 {
		sc.MaxIter = c.MaxIterations
	}
	switch c.OnFailure {
	case "", "abort":
		sc.OnFailure = trajectory.FailAbort
	case "skip":
		sc.OnFailure = trajectory.FailSkip
	default:
		return sc, fmt.Errorf("unknown on_failure policy %q (want abort or skip)", c.OnFailure)
	}
	return sc, nil
}

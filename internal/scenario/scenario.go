// Package scenario loads batch simulation definitions from HCL files. A
// file holds any number of named simulation blocks, each describing one
// complete engine configuration.
package scenario

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/roulettelab/internal/bet"
	"github.com/lox/roulettelab/internal/randutil"
	"github.com/lox/roulettelab/internal/sim"
	"github.com/lox/roulettelab/internal/strategy"
	"github.com/lox/roulettelab/internal/wheel"
)

// File is the root of a scenario document.
type File struct {
	Simulations []Scenario `hcl:"simulation,block"`
}

// Scenario defines one simulation run.
type Scenario struct {
	Name        string    `hcl:"name,label"`
	Balance     float64   `hcl:"balance"`
	Strategy    string    `hcl:"strategy"`
	Wheel       string    `hcl:"wheel,optional"`
	BetType     string    `hcl:"bet_type,optional"`
	BaseStake   float64   `hcl:"base_stake,optional"`
	Sequence    []float64 `hcl:"sequence,optional"`
	SecondStake float64   `hcl:"second_stake,optional"`
	ThirdStake  float64   `hcl:"third_stake,optional"`
	GrindGoal   int       `hcl:"grind_goal,optional"`
	MaxSpins    int       `hcl:"max_spins,optional"`
	Seed        int64     `hcl:"seed,optional"`
}

// Load parses a scenario file and applies defaults.
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario file: %s", diags.Error())
	}

	for i := range f.Simulations {
		f.Simulations[i].applyDefaults()
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Scenario) applyDefaults() {
	if s.Wheel == "" {
		s.Wheel = string(wheel.American)
	}
	if s.BetType == "" {
		s.BetType = string(bet.Single)
	}
	if s.MaxSpins == 0 {
		s.MaxSpins = 1000
	}
}

// Validate rejects malformed scenarios before any of them run.
func (f *File) Validate() error {
	if len(f.Simulations) == 0 {
		return fmt.Errorf("at least one simulation block is required")
	}
	seen := make(map[string]bool, len(f.Simulations))
	for _, s := range f.Simulations {
		if seen[s.Name] {
			return fmt.Errorf("duplicate simulation name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return fmt.Errorf("simulation %q: %w", s.Name, err)
		}
	}
	return nil
}

// Validate checks a single scenario's fields without building it.
func (s *Scenario) Validate() error {
	if s.Balance <= 0 {
		return fmt.Errorf("balance must be greater than 0, got %v", s.Balance)
	}
	if s.MaxSpins <= 0 {
		return fmt.Errorf("max_spins must be greater than 0, got %d", s.MaxSpins)
	}
	switch wheel.Type(s.Wheel) {
	case wheel.European, wheel.American:
	default:
		return fmt.Errorf("wheel must be %q or %q, got %q", wheel.European, wheel.American, s.Wheel)
	}
	// Building the strategy exercises its parameter validation.
	if _, err := strategy.New(s.Strategy, s.params(), nil); err != nil {
		return err
	}
	return nil
}

func (s *Scenario) params() strategy.Params {
	return strategy.Params{
		BaseStake:   s.BaseStake,
		Sequence:    s.Sequence,
		SecondStake: s.SecondStake,
		ThirdStake:  s.ThirdStake,
		GrindGoal:   s.GrindGoal,
	}
}

// Build turns the scenario into a runnable engine configuration. seed
// overrides the scenario's own seed when non-zero, so batch runs can derive
// independent sub-seeds from one master seed.
func (s *Scenario) Build(seed int64, logger *log.Logger) (sim.Config, error) {
	if seed == 0 {
		seed = s.Seed
	}

	w, err := wheel.New(wheel.Type(s.Wheel), randutil.New(seed))
	if err != nil {
		return sim.Config{}, err
	}

	strat, err := strategy.New(s.Strategy, s.params(), logger)
	if err != nil {
		return sim.Config{}, err
	}

	cfg := sim.Config{
		Balance:  s.Balance,
		MaxSpins: s.MaxSpins,
		Wheel:    w,
		Strategy: strat,
		Coverage: bet.Resolve(bet.Type(s.BetType)),
		Sections: w.Sections(),
		Logger:   logger,
	}
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/roulettelab/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	f, err := Load(writeScenario(t, `
simulation "baseline" {
  balance    = 1000
  strategy   = "Martingale"
  base_stake = 10
}
`))
	require.NoError(t, err)
	require.Len(t, f.Simulations, 1)

	s := f.Simulations[0]
	assert.Equal(t, "baseline", s.Name)
	assert.Equal(t, "American", s.Wheel)
	assert.Equal(t, "single", s.BetType)
	assert.Equal(t, 1000, s.MaxSpins)
}

func TestLoad_MultipleScenarios(t *testing.T) {
	f, err := Load(writeScenario(t, `
simulation "grind" {
  balance    = 500
  strategy   = "Oscars Grind"
  base_stake = 5
  grind_goal = 3
  wheel      = "European"
  bet_type   = "even-chance"
  max_spins  = 200
  seed       = 42
}

simulation "labouchere" {
  balance  = 1000
  strategy = "Labouchere"
  sequence = [1, 2, 3, 4]
}

simulation "thirds" {
  balance      = 1000
  strategy     = "Thirds"
  second_stake = 5
  third_stake  = 10
}
`))
	require.NoError(t, err)
	require.Len(t, f.Simulations, 3)

	grind := f.Simulations[0]
	assert.Equal(t, "European", grind.Wheel)
	assert.Equal(t, 3, grind.GrindGoal)
	assert.Equal(t, int64(42), grind.Seed)
	assert.Equal(t, 200, grind.MaxSpins)

	assert.Equal(t, []float64{1, 2, 3, 4}, f.Simulations[1].Sequence)
}

func TestLoad_RejectsEmptyFile(t *testing.T) {
	_, err := Load(writeScenario(t, ``))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one simulation")
}

func TestLoad_RejectsDuplicateNames(t *testing.T) {
	_, err := Load(writeScenario(t, `
simulation "same" {
  balance    = 100
  strategy   = "Flat Betting"
  base_stake = 1
}

simulation "same" {
  balance    = 100
  strategy   = "Flat Betting"
  base_stake = 1
}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoad_RejectsInvalidScenario(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{
			"unknown system",
			`simulation "x" {
  balance  = 100
  strategy = "roulette gods"
}`,
			"unknown betting system",
		},
		{
			"missing stake",
			`simulation "x" {
  balance  = 100
  strategy = "Martingale"
}`,
			"base stake",
		},
		{
			"bad wheel",
			`simulation "x" {
  balance    = 100
  strategy   = "Flat"
  base_stake = 1
  wheel      = "Monte Carlo"
}`,
			"wheel",
		},
		{
			"zero balance",
			`simulation "x" {
  balance    = 0
  strategy   = "Flat"
  base_stake = 1
}`,
			"balance",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, test.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.contains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestBuild_ProducesValidConfig(t *testing.T) {
	f, err := Load(writeScenario(t, `
simulation "baseline" {
  balance    = 1000
  strategy   = "Fibonacci"
  base_stake = 10
  max_spins  = 50
}
`))
	require.NoError(t, err)

	cfg, err := f.Simulations[0].Build(7, nil)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, cfg.Balance)
	assert.Equal(t, 50, cfg.MaxSpins)
	assert.Equal(t, strategy.NameFibonacci, cfg.Strategy.Name())
	require.NoError(t, cfg.Validate())
}

func TestBuild_SeedOverride(t *testing.T) {
	f, err := Load(writeScenario(t, `
simulation "seeded" {
  balance    = 1000
  strategy   = "Flat Betting"
  base_stake = 10
  seed       = 99
}
`))
	require.NoError(t, err)
	s := f.Simulations[0]

	// The same effective seed must produce the same spin sequence.
	a, err := s.Build(7, nil)
	require.NoError(t, err)
	b, err := s.Build(7, nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Wheel.Spin(), b.Wheel.Spin())
	}

	// Zero falls back to the scenario's own seed.
	c, err := s.Build(0, nil)
	require.NoError(t, err)
	d, err := s.Build(0, nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Equal(t, c.Wheel.Spin(), d.Wheel.Spin())
	}
}

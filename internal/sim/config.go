package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/roulettelab/internal/bet"
	"github.com/lox/roulettelab/internal/strategy"
	"github.com/lox/roulettelab/internal/wheel"
)

// Spinner produces wheel outcomes. *wheel.Wheel satisfies it; tests script
// outcomes through a stub.
type Spinner interface {
	Spin() wheel.Outcome
}

// Config is the fully validated input to a run. It is built by an external
// collaborator (CLI, scenario file, or test harness); the engine itself
// never reads input or renders output.
type Config struct {
	Balance  float64
	MaxSpins int
	Wheel    Spinner
	Strategy strategy.Strategy

	// Coverage settles every system except Thirds.
	Coverage bet.Coverage
	// Sections settles Thirds play and must be non-empty for it.
	Sections wheel.Sections

	// PromptAfterWin asks Continue after every winning spin.
	PromptAfterWin bool
	Continue       ContinueFunc

	// OnSpin, when set, observes each history record as it is appended.
	OnSpin func(Record)

	// Delay paces spins against Clock, for watch mode. Zero runs flat out.
	Delay time.Duration
	Clock quartz.Clock

	Logger *log.Logger
}

// Validate rejects a malformed configuration before any spin is simulated.
func (c *Config) Validate() error {
	if c.Balance <= 0 {
		return fmt.Errorf("initial balance must be greater than 0, got %v", c.Balance)
	}
	if c.MaxSpins <= 0 {
		return fmt.Errorf("max spins must be greater than 0, got %d", c.MaxSpins)
	}
	if c.Wheel == nil {
		return fmt.Errorf("a wheel is required")
	}
	if c.Strategy == nil {
		return fmt.Errorf("a betting system is required")
	}
	if _, ok := c.Strategy.(*strategy.Sectional); ok {
		if c.Sections.Empty() {
			return fmt.Errorf("thirds play requires the wheel's section partition")
		}
	} else if c.Coverage.Size() == 0 || c.Coverage.Payout <= 0 {
		return fmt.Errorf("a bet coverage with a positive payout is required")
	}
	if c.PromptAfterWin && c.Continue == nil {
		return fmt.Errorf("prompt-after-win requires a continue decision")
	}
	return nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Logger == nil {
		out.Logger = log.New(io.Discard)
	}
	if out.Clock == nil {
		out.Clock = quartz.NewReal()
	}
	return out
}

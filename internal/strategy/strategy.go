// Package strategy implements the staking systems the simulator can play.
// Each system owns its own mutable state and decides, after every spin, how
// the next wager evolves. Exactly one strategy instance is active per
// simulation and none of them are safe for concurrent use.
package strategy

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Strategy is the capability the simulation loop consumes: the wager for
// the upcoming spin and a state transition fed with the spin's result.
type Strategy interface {
	// Name returns the canonical system name for reporting.
	Name() string
	// Stake returns the wager to place on the upcoming spin. It never
	// fails; an exhausted strategy reports through Exhausted instead.
	Stake() float64
	// Observe mutates the staking state with the result of the spin just
	// played. net is the spin's signed profit.
	Observe(won bool, net float64)
	// Exhausted reports whether the staking state has run out, which the
	// loop treats as a normal termination condition.
	Exhausted() bool
}

// Params carries the strategy-specific configuration gathered by the
// caller. Only the fields relevant to the chosen system are consulted.
type Params struct {
	BaseStake   float64   // stake unit for every system except Labouchere and Thirds
	Sequence    []float64 // Labouchere working sequence
	SecondStake float64   // Thirds: stake on the second section
	ThirdStake  float64   // Thirds: stake on the third section
	GrindGoal   int       // Oscar's Grind: wins per cycle, defaults to 1
}

// Canonical system names, as reported and as accepted (case-insensitively,
// with spaces, hyphens and apostrophes interchangeable) by New.
const (
	NameMartingale        = "Martingale"
	NameReverseMartingale = "Reverse Martingale"
	NameDAlembert         = "DAlembert"
	NameFibonacci         = "Fibonacci"
	NameLabouchere        = "Labouchere"
	NameParoli            = "Paroli"
	NameOscarsGrind       = "Oscars Grind"
	NameOneThreeTwoSix    = "1-3-2-6"
	NameFlat              = "Flat Betting"
	NameThirds            = "Thirds"
)

// Names lists every system in menu order.
func Names() []string {
	return []string{
		NameMartingale,
		NameReverseMartingale,
		NameThirds,
		NameFibonacci,
		NameDAlembert,
		NameLabouchere,
		NameParoli,
		NameOscarsGrind,
		NameOneThreeTwoSix,
		NameFlat,
	}
}

// Describe returns the menu description for a system name.
func Describe(name string) string {
	switch name {
	case NameMartingale:
		return "Double your bet after every loss to recover previous losses."
	case NameReverseMartingale:
		return "Double your bet after every win to maximize streaks."
	case NameThirds:
		return "Bet on different thirds of the roulette wheel."
	case NameFibonacci:
		return "Follow the Fibonacci sequence for bet sizing."
	case NameDAlembert:
		return "Increase your bet by one unit after a loss and decrease by one after a win."
	case NameLabouchere:
		return "Use a sequence of numbers to determine bet amounts, adjusting after wins and losses."
	case NameParoli:
		return "Double your bet after every win to capitalize on winning streaks."
	case NameOscarsGrind:
		return "Aim for small, steady profits by increasing your bet after wins."
	case NameOneThreeTwoSix:
		return "Follow a specific betting sequence to maximize profits during winning streaks."
	case NameFlat:
		return "Bet the same amount on every spin without changing your bet size."
	default:
		return ""
	}
}

// New builds the named system from its parameters. Unknown names and
// invalid parameters are configuration errors; nothing is silently
// corrected here.
func New(name string, p Params, logger *log.Logger) (Strategy, error) {
	switch canonical(name) {
	case "martingale":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewMartingale(p.BaseStake), nil
	case "reversemartingale":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewReverseMartingale(p.BaseStake), nil
	case "dalembert":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewDAlembert(p.BaseStake), nil
	case "fibonacci":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewFibonacci(p.BaseStake), nil
	case "labouchere":
		return NewLabouchere(p.Sequence)
	case "paroli":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewParoli(p.BaseStake), nil
	case "oscarsgrind":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		goal := p.GrindGoal
		if goal == 0 {
			goal = 1
		}
		if goal < 0 {
			return nil, fmt.Errorf("grind goal must be positive, got %d", goal)
		}
		return NewOscarsGrind(p.BaseStake, goal, logger), nil
	case "1326", "onethreetwosix":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewOneThreeTwoSix(p.BaseStake), nil
	case "flat", "flatbetting":
		if err := positiveStake(p); err != nil {
			return nil, err
		}
		return NewFlat(p.BaseStake), nil
	case "thirds", "sectional":
		return NewSectional(p.SecondStake, p.ThirdStake)
	default:
		return nil, fmt.Errorf("unknown betting system %q", name)
	}
}

func positiveStake(p Params) error {
	if p.BaseStake <= 0 {
		return fmt.Errorf("base stake must be greater than 0, got %v", p.BaseStake)
	}
	return nil
}

func canonical(name string) string {
	name = strings.ToLower(name)
	for _, cut := range []string{" ", "-", "'", "’"} {
		name = strings.ReplaceAll(name, cut, "")
	}
	return name
}

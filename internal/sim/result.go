package sim

import "github.com/lox/roulettelab/internal/wheel"

// HaltReason says why a run ended. Every reason is a normal termination
// state, not an error; the engine performs a run to completion or to a
// halt in one pass with no retries.
type HaltReason int

const (
	// HaltMaxSpins is reached when the configured spin cap runs out.
	HaltMaxSpins HaltReason = iota
	// HaltInsufficientBalance means the next wager exceeded the balance.
	HaltInsufficientBalance
	// HaltSequenceComplete means the staking state ran out (Labouchere
	// cleared its sequence).
	HaltSequenceComplete
	// HaltUserStopped means the continue-after-win decision was declined.
	HaltUserStopped
	// HaltBankrupt means the balance reached zero or below between spins.
	HaltBankrupt
)

func (h HaltReason) String() string {
	switch h {
	case HaltMaxSpins:
		return "max spins reached"
	case HaltInsufficientBalance:
		return "insufficient balance"
	case HaltSequenceComplete:
		return "sequence complete"
	case HaltUserStopped:
		return "stopped by user"
	case HaltBankrupt:
		return "bankrupt"
	default:
		return "unknown"
	}
}

// Record is one spin's entry in the run history. Records are append-only
// and never mutated after creation.
type Record struct {
	Spin    int           // 1-based spin index
	Wager   float64       // total amount placed on this spin
	Outcome wheel.Outcome // pocket the ball landed in
	Won     bool          // coverage hit, or positive sectional net
	Net     float64       // signed profit for the spin
	Section wheel.Section // sectional play only; SectionNone otherwise
	Balance float64       // balance after settling the spin
}

// Result is the engine's only externally observable output.
type Result struct {
	History               []Record
	InitialBalance        float64
	FinalBalance          float64
	BalanceOverTime       []float64 // one snapshot per completed spin
	Spins                 int
	Wins                  int
	Losses                int
	LongestStreak         int
	LongestStreakWinnings float64
	Halt                  HaltReason
}

// Net returns the run's overall profit or loss.
func (r *Result) Net() float64 {
	return r.FinalBalance - r.InitialBalance
}

// Status is a snapshot handed to the continue-after-win decision point.
type Status struct {
	Spin      int
	Balance   float64
	Net       float64 // balance minus initial balance
	Wins      int
	Losses    int
	NextStake float64 // wager the strategy would place next
	Strategy  string
}

// ContinueFunc decides, after a winning spin, whether the run keeps going.
// It may block indefinitely; the caller supplies any timeout policy.
type ContinueFunc func(Status) bool

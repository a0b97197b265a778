// Package sim contains the simulation engine: it orchestrates spins,
// settles wagers against the configured coverage or section partition,
// tracks balance and streaks, and produces the run history.
package sim

import (
	"github.com/lox/roulettelab/internal/strategy"
	"github.com/lox/roulettelab/internal/wheel"
)

// Engine runs a single simulation to completion or to a halt state in one
// pass. An engine must not be invoked concurrently from multiple call
// sites; each simulation owns its own engine, wheel and strategy state.
type Engine struct {
	cfg       Config
	sectional *strategy.Sectional // non-nil for Thirds play
}

// New validates the configuration and builds an engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg.withDefaults()}
	if sec, ok := cfg.Strategy.(*strategy.Sectional); ok {
		e.sectional = sec
	}
	return e, nil
}

// streak tracks the current and best run of winning spins. The best run is
// whichever streak first reaches the greater win count; a longer-profit but
// shorter streak never displaces it.
type streak struct {
	current         int
	currentWinnings float64
	longest         int
	longestWinnings float64
}

func (s *streak) update(net float64) {
	if net > 0 {
		s.current++
		s.currentWinnings += net
		if s.current > s.longest {
			s.longest = s.current
			s.longestWinnings = s.currentWinnings
		}
	} else {
		s.current = 0
		s.currentWinnings = 0
	}
}

// Run executes the simulation. Halt conditions are reported in the result,
// never as errors.
func (e *Engine) Run() *Result {
	cfg := e.cfg
	res := &Result{
		InitialBalance: cfg.Balance,
		Halt:           HaltMaxSpins,
	}

	balance := cfg.Balance
	var st streak
	spin := 0

	logger := cfg.Logger.WithPrefix("sim").With("system", cfg.Strategy.Name())
	logger.Debug("starting run", "balance", balance, "maxSpins", cfg.MaxSpins)

loop:
	for {
		switch {
		case spin >= cfg.MaxSpins:
			res.Halt = HaltMaxSpins
			break loop
		case balance <= 0:
			res.Halt = HaltBankrupt
			break loop
		}

		if cfg.Delay > 0 {
			timer := cfg.Clock.NewTimer(cfg.Delay)
			<-timer.C
		}

		spin++

		stake := cfg.Strategy.Stake()
		if balance < stake {
			logger.Info("insufficient balance to continue", "spin", spin, "stake", stake, "balance", balance)
			res.Halt = HaltInsufficientBalance
			break loop
		}

		balance -= stake
		outcome := cfg.Wheel.Spin()

		var rec Record
		if e.sectional != nil {
			rec = e.settleSections(spin, stake, outcome, &balance)
		} else {
			rec = e.settleCoverage(spin, stake, outcome, &balance)
		}

		// A covered outcome counts as a win even when its net is zero
		// (an even-chance hit credits exactly the stake). Streaks only
		// care about positive net. Zero-net sectional spins count as
		// neither a win nor a loss.
		switch {
		case rec.Won:
			res.Wins++
			st.update(rec.Net)
		case rec.Net < 0:
			res.Losses++
			st.update(0)
		default:
			st.update(0)
		}

		res.History = append(res.History, rec)
		res.BalanceOverTime = append(res.BalanceOverTime, balance)
		if cfg.OnSpin != nil {
			cfg.OnSpin(rec)
		}

		cfg.Strategy.Observe(rec.Won, rec.Net)
		if cfg.Strategy.Exhausted() {
			logger.Info("staking sequence completed", "spin", spin, "balance", balance)
			res.Halt = HaltSequenceComplete
			break loop
		}

		if rec.Won && cfg.PromptAfterWin {
			status := Status{
				Spin:      spin,
				Balance:   balance,
				Net:       balance - cfg.Balance,
				Wins:      res.Wins,
				Losses:    res.Losses,
				NextStake: cfg.Strategy.Stake(),
				Strategy:  cfg.Strategy.Name(),
			}
			if !cfg.Continue(status) {
				logger.Debug("user declined to continue", "spin", spin)
				res.Halt = HaltUserStopped
				break loop
			}
		}
	}

	res.FinalBalance = balance
	res.Spins = len(res.History)
	res.LongestStreak = st.longest
	res.LongestStreakWinnings = st.longestWinnings

	logger.Debug("run halted",
		"reason", res.Halt,
		"spins", res.Spins,
		"balance", res.FinalBalance,
		"wins", res.Wins,
		"losses", res.Losses)

	return res
}

// settleCoverage resolves a spin against the configured bet coverage. The
// stake has already been deducted; a win credits multiplier times the
// stake, so the net profit on a win is (multiplier-1) times the stake.
func (e *Engine) settleCoverage(spin int, stake float64, outcome wheel.Outcome, balance *float64) Record {
	won := e.cfg.Coverage.Covers(outcome)
	var net float64
	if won {
		payout := float64(e.cfg.Coverage.Payout) * stake
		net = payout - stake
		*balance += payout
	} else {
		net = -stake
	}
	return Record{
		Spin:    spin,
		Wager:   stake,
		Outcome: outcome,
		Won:     won,
		Net:     net,
		Balance: *balance,
	}
}

// settleSections resolves a Thirds spin. The winning section pays 2:1 with
// its stake returned while the other section's stake is lost, so the net is
// twice the winning stake minus the other stake. The first section and the
// zero symbol lose both stakes.
func (e *Engine) settleSections(spin int, stake float64, outcome wheel.Outcome, balance *float64) Record {
	section := e.cfg.Sections.Locate(outcome)
	second, third := e.sectional.Second(), e.sectional.Third()

	var credit float64
	switch section {
	case wheel.SectionSecond:
		credit = 3 * second
	case wheel.SectionThird:
		credit = 3 * third
	}
	*balance += credit
	net := credit - stake

	return Record{
		Spin:    spin,
		Wager:   stake,
		Outcome: outcome,
		Won:     net > 0,
		Net:     net,
		Section: section,
		Balance: *balance,
	}
}

package strategy

import "github.com/charmbracelet/log"

// OscarsGrind bets the base unit at the start of a cycle and holds the
// stake flat otherwise. Each win advances the grind counter and resets the
// stake to base; reaching the grind goal completes the cycle and starts a
// new one. Losses leave the stake untouched. The stake therefore never
// rises within a cycle even after multiple wins; that asymmetry is kept
// deliberately from the original system definition.
type OscarsGrind struct {
	base    float64
	current float64
	goal    int
	grind   int
	cycles  int
	logger  *log.Logger
}

func NewOscarsGrind(base float64, goal int, logger *log.Logger) *OscarsGrind {
	return &OscarsGrind{base: base, current: base, goal: goal, logger: logger}
}

func (o *OscarsGrind) Name() string    { return NameOscarsGrind }
func (o *OscarsGrind) Exhausted() bool { return false }

func (o *OscarsGrind) Stake() float64 {
	if o.grind == 0 {
		return o.base
	}
	return o.current
}

func (o *OscarsGrind) Observe(won bool, net float64) {
	if !won {
		return
	}
	o.grind++
	o.current = o.base
	if o.grind >= o.goal {
		o.cycles++
		o.grind = 0
		if o.logger != nil {
			o.logger.Info("grind goal achieved", "cycles", o.cycles)
		}
	}
}

// Grind returns the win count within the current cycle, for reporting.
func (o *OscarsGrind) Grind() int { return o.grind }

// Goal returns the configured wins-per-cycle target.
func (o *OscarsGrind) Goal() int { return o.goal }

// Cycles returns how many grind cycles have completed.
func (o *OscarsGrind) Cycles() int { return o.cycles }

package strategy

// OneThreeTwoSix wagers multiples of the base unit following the fixed
// 1-3-2-6 ladder. A win advances the step and a completed ladder wraps
// back to the start; any loss resets to the start. The step index is
// always within the ladder, so the system never exhausts.
type OneThreeTwoSix struct {
	base float64
	step int
}

var oneThreeTwoSixLadder = [4]float64{1, 3, 2, 6}

func NewOneThreeTwoSix(base float64) *OneThreeTwoSix {
	return &OneThreeTwoSix{base: base}
}

func (s *OneThreeTwoSix) Name() string    { return NameOneThreeTwoSix }
func (s *OneThreeTwoSix) Exhausted() bool { return false }

func (s *OneThreeTwoSix) Stake() float64 {
	return oneThreeTwoSixLadder[s.step] * s.base
}

func (s *OneThreeTwoSix) Observe(won bool, net float64) {
	if won {
		s.step++
		if s.step >= len(oneThreeTwoSixLadder) {
			s.step = 0
		}
	} else {
		s.step = 0
	}
}

// Step returns the current ladder position, for reporting.
func (s *OneThreeTwoSix) Step() int { return s.step }

package strategy

import "fmt"

// Sectional (the "Thirds" system) places a fixed two-part wager on the
// second and third sections of the wheel every spin. It carries no
// progression state; the simulation loop settles it directly against the
// section partition.
type Sectional struct {
	second float64
	third  float64
}

func NewSectional(second, third float64) (*Sectional, error) {
	if second < 0 || third < 0 {
		return nil, fmt.Errorf("section stakes must not be negative, got second=%v third=%v", second, third)
	}
	return &Sectional{second: second, third: third}, nil
}

func (s *Sectional) Name() string    { return NameThirds }
func (s *Sectional) Exhausted() bool { return false }

// Stake returns the combined wager placed each spin.
func (s *Sectional) Stake() float64 { return s.second + s.third }

// Observe is a no-op: the stakes never change during a run.
func (s *Sectional) Observe(won bool, net float64) {}

// Second returns the stake on the second section.
func (s *Sectional) Second() float64 { return s.second }

// Third returns the stake on the third section.
func (s *Sectional) Third() float64 { return s.third }

// Package stats computes descriptive summaries over a run's per-spin nets.
// It stops at description; statistical-significance analysis is left to
// whoever consumes the history.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/roulettelab/internal/sim"
)

// Summary accumulates per-spin net results.
type Summary struct {
	Spins  int
	Sum    float64
	Sum2   float64   // sum of squares for variance
	Values []float64 // kept for median/percentile calculation

	// MaxDrawdown is the largest peak-to-trough balance drop observed.
	MaxDrawdown float64
}

// Summarize builds a summary from a completed run.
func Summarize(r *sim.Result) *Summary {
	s := &Summary{}
	for _, rec := range r.History {
		s.Add(rec.Net)
	}
	s.MaxDrawdown = maxDrawdown(r.InitialBalance, r.BalanceOverTime)
	return s
}

// Add incorporates one spin's net result.
func (s *Summary) Add(net float64) {
	s.Spins++
	s.Sum += net
	s.Sum2 += net * net
	s.Values = append(s.Values, net)
}

// Mean returns the arithmetic mean net per spin.
func (s *Summary) Mean() float64 {
	if s.Spins == 0 {
		return 0
	}
	return s.Sum / float64(s.Spins)
}

// Variance returns the sample variance of per-spin nets.
func (s *Summary) Variance() float64 {
	if s.Spins < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Spins)*mean*mean) / float64(s.Spins-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the median net per spin.
func (s *Summary) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0) using
// linear interpolation.
func (s *Summary) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the summary's internal consistency.
func (s *Summary) Validate() error {
	if s.Spins < 0 {
		return fmt.Errorf("invalid spin count: %d", s.Spins)
	}
	if len(s.Values) != s.Spins {
		return fmt.Errorf("values length (%d) does not match spin count (%d)", len(s.Values), s.Spins)
	}
	if s.MaxDrawdown < 0 {
		return fmt.Errorf("negative max drawdown: %v", s.MaxDrawdown)
	}
	return nil
}

func maxDrawdown(initial float64, balances []float64) float64 {
	peak := initial
	var worst float64
	for _, b := range balances {
		if b > peak {
			peak = b
		}
		if dd := peak - b; dd > worst {
			worst = dd
		}
	}
	return worst
}

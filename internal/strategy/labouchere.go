package strategy

import "fmt"

// Labouchere wagers the sum of the first and last numbers of a working
// sequence (or the sole number when one remains). A win removes both ends;
// a loss appends the stake just lost. The system is finished when the
// sequence empties, which the loop reports as sequence completion rather
// than an error.
type Labouchere struct {
	seq []float64
}

func NewLabouchere(seq []float64) (*Labouchere, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("labouchere sequence must not be empty")
	}
	working := make([]float64, len(seq))
	for i, v := range seq {
		if v <= 0 {
			return nil, fmt.Errorf("labouchere sequence values must be positive, got %v at position %d", v, i)
		}
		working[i] = v
	}
	return &Labouchere{seq: working}, nil
}

func (l *Labouchere) Name() string    { return NameLabouchere }
func (l *Labouchere) Exhausted() bool { return len(l.seq) == 0 }

func (l *Labouchere) Stake() float64 {
	switch len(l.seq) {
	case 0:
		return 0
	case 1:
		return l.seq[0]
	default:
		return l.seq[0] + l.seq[len(l.seq)-1]
	}
}

func (l *Labouchere) Observe(won bool, net float64) {
	if len(l.seq) == 0 {
		return
	}
	if won {
		if len(l.seq) == 1 {
			l.seq = l.seq[:0]
		} else {
			l.seq = l.seq[1 : len(l.seq)-1]
		}
	} else {
		l.seq = append(l.seq, l.Stake())
	}
}

// Sequence returns a copy of the working sequence, for reporting.
func (l *Labouchere) Sequence() []float64 {
	out := make([]float64, len(l.seq))
	copy(out, l.seq)
	return out
}

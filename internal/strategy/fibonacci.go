package strategy

// Fibonacci walks a step index along the Fibonacci sequence: one step
// forward on a loss, two steps back (never below the start) on a win. The
// stake is the sequence value at the step times the base unit. The sequence
// is extended lazily as the step advances.
type Fibonacci struct {
	base float64
	step int
	seq  []float64
}

func NewFibonacci(base float64) *Fibonacci {
	return &Fibonacci{base: base, seq: []float64{1, 1}}
}

func (f *Fibonacci) Name() string    { return NameFibonacci }
func (f *Fibonacci) Exhausted() bool { return false }

func (f *Fibonacci) Stake() float64 {
	f.extend(f.step)
	return f.seq[f.step] * f.base
}

func (f *Fibonacci) Observe(won bool, net float64) {
	if won {
		f.step -= 2
		if f.step < 0 {
			f.step = 0
		}
	} else {
		f.step++
	}
}

// Step returns the current position in the sequence, for reporting.
func (f *Fibonacci) Step() int { return f.step }

func (f *Fibonacci) extend(step int) {
	for len(f.seq) <= step {
		n := len(f.seq)
		f.seq = append(f.seq, f.seq[n-1]+f.seq[n-2])
	}
}

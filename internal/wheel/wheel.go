package wheel

import (
	"fmt"
	rand "math/rand/v2"
	"strconv"
)

// Type selects the pocket layout of the wheel.
type Type string

const (
	European Type = "European" // 37 pockets: 0-36
	American Type = "American" // 38 pockets: 0-36 plus the double zero
)

// Outcome is a single pocket. Numeric pockets carry their value (0-36);
// the American double zero is the distinguished DoubleZero value.
type Outcome int

// DoubleZero is the "00" pocket found only on American wheels.
const DoubleZero Outcome = -1

func (o Outcome) String() string {
	if o == DoubleZero {
		return "00"
	}
	return strconv.Itoa(int(o))
}

// Numeric reports whether the outcome is a plain number rather than the
// double-zero symbol.
func (o Outcome) Numeric() bool {
	return o != DoubleZero
}

// Wheel produces uniformly random outcomes from a fixed pocket set.
// It is not safe for concurrent use; each simulation owns its own wheel.
type Wheel struct {
	typ      Type
	outcomes []Outcome
	rng      *rand.Rand
}

// New builds a wheel of the given type drawing randomness from rng.
func New(typ Type, rng *rand.Rand) (*Wheel, error) {
	var outcomes []Outcome
	switch typ {
	case European:
		outcomes = make([]Outcome, 0, 37)
		for n := 0; n <= 36; n++ {
			outcomes = append(outcomes, Outcome(n))
		}
	case American:
		outcomes = make([]Outcome, 0, 38)
		outcomes = append(outcomes, 0, DoubleZero)
		for n := 1; n <= 36; n++ {
			outcomes = append(outcomes, Outcome(n))
		}
	default:
		return nil, fmt.Errorf("wheel type must be %q or %q, got %q", European, American, typ)
	}
	return &Wheel{typ: typ, outcomes: outcomes, rng: rng}, nil
}

// Spin draws one outcome uniformly at random.
func (w *Wheel) Spin() Outcome {
	return w.outcomes[w.rng.IntN(len(w.outcomes))]
}

// Type returns the configured wheel type.
func (w *Wheel) Type() Type {
	return w.typ
}

// Size returns the number of pockets (37 or 38).
func (w *Wheel) Size() int {
	return len(w.outcomes)
}

// Outcomes returns a copy of the pocket set.
func (w *Wheel) Outcomes() []Outcome {
	out := make([]Outcome, len(w.outcomes))
	copy(out, w.outcomes)
	return out
}

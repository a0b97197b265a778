// Package bet maps a bet-type selection to the set of wheel outcomes it
// covers and the payout multiplier it earns. The coverage definitions are
// illustrative stand-ins for a real table layout: a "split" is always 0-1,
// a "corner" always 0-1-2-3, and so on.
package bet

import "github.com/lox/roulettelab/internal/wheel"

// Type names a bet coverage.
type Type string

const (
	Single     Type = "single"      // one number, pays 35:1
	Split      Type = "split"       // two numbers, pays 17:1
	Corner     Type = "corner"      // four numbers, pays 8:1
	Line       Type = "line"        // six numbers, pays 5:1
	Dozen      Type = "dozen"       // twelve numbers, pays 2:1
	EvenChance Type = "even-chance" // eighteen numbers, pays 1:1
)

// Types lists the supported bet types in menu order.
func Types() []Type {
	return []Type{Single, Split, Corner, Line, Dozen, EvenChance}
}

// Describe returns the menu description for a bet type.
func Describe(t Type) string {
	switch t {
	case Split:
		return "Bet on 2 numbers (pays 17:1)"
	case Corner:
		return "Bet on 4 numbers (pays 8:1)"
	case Line:
		return "Bet on 6 numbers (pays 5:1)"
	case Dozen:
		return "Bet on 12 numbers (pays 2:1)"
	case EvenChance:
		return "Bet on 18 numbers (pays 1:1)"
	default:
		return "Bet on a single number (pays 35:1)"
	}
}

// Coverage is an immutable pairing of covered numbers and a payout
// multiplier, built once at configuration time.
type Coverage struct {
	Bet     Type
	Payout  int
	numbers map[wheel.Outcome]struct{}
}

// Resolve builds the coverage for a bet type. An unrecognised type silently
// resolves to a single-number bet; that quirk is long-standing behaviour,
// not an error.
func Resolve(t Type) Coverage {
	switch t {
	case Split:
		return span(t, 17, 0, 1)
	case Corner:
		return span(t, 8, 0, 3)
	case Line:
		return span(t, 5, 0, 5)
	case Dozen:
		return span(t, 2, 1, 12)
	case EvenChance:
		return span(t, 1, 1, 18)
	case Single:
		return span(t, 35, 0, 0)
	default:
		return span(Single, 35, 0, 0)
	}
}

func span(t Type, payout int, lo, hi int) Coverage {
	numbers := make(map[wheel.Outcome]struct{}, hi-lo+1)
	for n := lo; n <= hi; n++ {
		numbers[wheel.Outcome(n)] = struct{}{}
	}
	return Coverage{Bet: t, Payout: payout, numbers: numbers}
}

// Covers reports whether the outcome lies in the covered set. The double
// zero is never covered.
func (c Coverage) Covers(o wheel.Outcome) bool {
	_, ok := c.numbers[o]
	return ok
}

// Size returns how many numbers the coverage spans.
func (c Coverage) Size() int {
	return len(c.numbers)
}

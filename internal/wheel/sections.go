package wheel

// Section identifies one third of the numeric pockets for sectional play.
type Section int

const (
	SectionNone Section = iota // double zero, or a pocket outside every group
	SectionFirst
	SectionSecond
	SectionThird
)

func (s Section) String() string {
	switch s {
	case SectionFirst:
		return "first"
	case SectionSecond:
		return "second"
	case SectionThird:
		return "third"
	default:
		return "none"
	}
}

// Sections is a fixed partition of the numeric pockets into three
// contiguous groups, built once at configuration time.
type Sections struct {
	First  []Outcome
	Second []Outcome
	Third  []Outcome
}

// Sections splits the wheel's numeric pockets into thirds in wheel order.
// The split point is len/3, so with 37 numbers the first two groups hold
// 12 pockets each and the remainder lands in the third group. Zero sits in
// the first group; the double zero belongs to no group.
func (w *Wheel) Sections() Sections {
	numbers := make([]Outcome, 0, len(w.outcomes))
	for _, o := range w.outcomes {
		if o.Numeric() {
			numbers = append(numbers, o)
		}
	}
	third := len(numbers) / 3
	return Sections{
		First:  numbers[:third],
		Second: numbers[third : 2*third],
		Third:  numbers[2*third:],
	}
}

// Locate returns which group the outcome landed in, or SectionNone for the
// double zero.
func (s Sections) Locate(o Outcome) Section {
	for _, n := range s.First {
		if n == o {
			return SectionFirst
		}
	}
	for _, n := range s.Second {
		if n == o {
			return SectionSecond
		}
	}
	for _, n := range s.Third {
		if n == o {
			return SectionThird
		}
	}
	return SectionNone
}

// Empty reports whether the partition has been built.
func (s Sections) Empty() bool {
	return len(s.First) == 0 && len(s.Second) == 0 && len(s.Third) == 0
}

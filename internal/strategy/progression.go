package strategy

// Martingale doubles the stake after a loss and resets to the base stake
// after a win.
type Martingale struct {
	base    float64
	current float64
}

func NewMartingale(base float64) *Martingale {
	return &Martingale{base: base, current: base}
}

func (m *Martingale) Name() string    { return NameMartingale }
func (m *Martingale) Stake() float64  { return m.current }
func (m *Martingale) Exhausted() bool { return false }

func (m *Martingale) Observe(won bool, net float64) {
	if won {
		m.current = m.base
	} else {
		m.current *= 2
	}
}

// ReverseMartingale doubles the stake after a win and resets after a loss.
// Paroli plays the identical progression; both names are kept so reports
// match what the user asked for.
type ReverseMartingale struct {
	name    string
	base    float64
	current float64
}

func NewReverseMartingale(base float64) *ReverseMartingale {
	return &ReverseMartingale{name: NameReverseMartingale, base: base, current: base}
}

// NewParoli builds the Paroli variant of the win progression.
func NewParoli(base float64) *ReverseMartingale {
	return &ReverseMartingale{name: NameParoli, base: base, current: base}
}

func (r *ReverseMartingale) Name() string    { return r.name }
func (r *ReverseMartingale) Stake() float64  { return r.current }
func (r *ReverseMartingale) Exhausted() bool { return false }

func (r *ReverseMartingale) Observe(won bool, net float64) {
	if won {
		r.current *= 2
	} else {
		r.current = r.base
	}
}

// DAlembert moves the stake down one unit after a win (never below one
// unit) and up one unit after a loss.
type DAlembert struct {
	current float64
}

func NewDAlembert(base float64) *DAlembert {
	return &DAlembert{current: base}
}

func (d *DAlembert) Name() string    { return NameDAlembert }
func (d *DAlembert) Stake() float64  { return d.current }
func (d *DAlembert) Exhausted() bool { return false }

func (d *DAlembert) Observe(won bool, net float64) {
	if won {
		d.current--
		if d.current < 1 {
			d.current = 1
		}
	} else {
		d.current++
	}
}

// Flat wagers the same amount on every spin.
type Flat struct {
	stake float64
}

func NewFlat(stake float64) *Flat {
	return &Flat{stake: stake}
}

func (f *Flat) Name() string                  { return NameFlat }
func (f *Flat) Stake() float64                { return f.stake }
func (f *Flat) Exhausted() bool               { return false }
func (f *Flat) Observe(won bool, net float64) {}

package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lose(s Strategy) { s.Observe(false, -s.Stake()) }
func win(s Strategy)  { s.Observe(true, s.Stake()) }

func TestMartingale_DoublesOnLossResetsOnWin(t *testing.T) {
	m := NewMartingale(10)

	assert.Equal(t, 10.0, m.Stake())
	lose(m)
	assert.Equal(t, 20.0, m.Stake())
	lose(m)
	assert.Equal(t, 40.0, m.Stake())
	lose(m)
	assert.Equal(t, 80.0, m.Stake())
	win(m)
	assert.Equal(t, 10.0, m.Stake())
	assert.False(t, m.Exhausted())
}

func TestReverseMartingale_DoublesOnWinResetsOnLoss(t *testing.T) {
	r := NewReverseMartingale(5)

	win(r)
	win(r)
	assert.Equal(t, 20.0, r.Stake())
	lose(r)
	assert.Equal(t, 5.0, r.Stake())
	assert.Equal(t, NameReverseMartingale, r.Name())
}

func TestParoli_SharesProgressionButKeepsName(t *testing.T) {
	p := NewParoli(5)

	assert.Equal(t, NameParoli, p.Name())
	win(p)
	assert.Equal(t, 10.0, p.Stake())
}

func TestDAlembert_UnitStepsWithFloor(t *testing.T) {
	d := NewDAlembert(3)

	lose(d)
	lose(d)
	assert.Equal(t, 5.0, d.Stake())
	win(d)
	assert.Equal(t, 4.0, d.Stake())
	win(d)
	win(d)
	win(d)
	win(d)
	assert.Equal(t, 1.0, d.Stake(), "stake never drops below one unit")
}

func TestFibonacci_WalksSequence(t *testing.T) {
	f := NewFibonacci(10)

	assert.Equal(t, 10.0, f.Stake())
	lose(f)
	assert.Equal(t, 10.0, f.Stake())
	lose(f)
	assert.Equal(t, 20.0, f.Stake())
	lose(f)
	assert.Equal(t, 30.0, f.Stake())
	lose(f)
	assert.Equal(t, 50.0, f.Stake())

	// A win steps back two; wins at the start stay pinned at the start.
	win(f)
	assert.Equal(t, 2, f.Step())
	assert.Equal(t, 20.0, f.Stake())
	win(f)
	win(f)
	assert.Equal(t, 0, f.Step())
	assert.Equal(t, 10.0, f.Stake())
}

func TestLabouchere_TrimsOnWinAppendsOnLoss(t *testing.T) {
	l, err := NewLabouchere([]float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 4.0, l.Stake())
	win(l)
	assert.Equal(t, []float64{2}, l.Sequence())
	assert.Equal(t, 2.0, l.Stake())

	lose(l)
	assert.Equal(t, []float64{2, 2}, l.Sequence())
	assert.Equal(t, 4.0, l.Stake())

	win(l)
	assert.True(t, l.Exhausted())
	assert.Equal(t, 0.0, l.Stake())
}

func TestLabouchere_SoleNumberClearsOnWin(t *testing.T) {
	l, err := NewLabouchere([]float64{7})
	require.NoError(t, err)

	assert.Equal(t, 7.0, l.Stake())
	win(l)
	assert.True(t, l.Exhausted())
}

func TestLabouchere_RejectsBadSequences(t *testing.T) {
	_, err := NewLabouchere(nil)
	assert.Error(t, err)

	_, err = NewLabouchere([]float64{1, 0, 3})
	assert.Error(t, err)

	_, err = NewLabouchere([]float64{1, -2})
	assert.Error(t, err)
}

func TestOscarsGrind_StakeStaysAtBaseWithinCycle(t *testing.T) {
	o := NewOscarsGrind(10, 3, nil)

	assert.Equal(t, 10.0, o.Stake())
	lose(o)
	assert.Equal(t, 10.0, o.Stake(), "losses never change the stake")

	win(o)
	assert.Equal(t, 1, o.Grind())
	assert.Equal(t, 10.0, o.Stake())
	win(o)
	win(o)
	assert.Equal(t, 0, o.Grind(), "goal reached resets the cycle")
	assert.Equal(t, 1, o.Cycles())
}

func TestOneThreeTwoSix_LadderWrapsAndResets(t *testing.T) {
	s := NewOneThreeTwoSix(10)

	stakes := []float64{10, 30, 20, 60}
	for _, want := range stakes {
		assert.Equal(t, want, s.Stake())
		win(s)
	}
	assert.Equal(t, 10.0, s.Stake(), "completed ladder wraps to the start")

	win(s)
	win(s)
	lose(s)
	assert.Equal(t, 10.0, s.Stake(), "any loss resets the ladder")
	assert.False(t, s.Exhausted())
}

func TestFlat_NeverChanges(t *testing.T) {
	f := NewFlat(25)

	win(f)
	lose(f)
	assert.Equal(t, 25.0, f.Stake())
}

func TestSectional_FixedCombinedStake(t *testing.T) {
	s, err := NewSectional(5, 10)
	require.NoError(t, err)

	assert.Equal(t, 15.0, s.Stake())
	assert.Equal(t, 5.0, s.Second())
	assert.Equal(t, 10.0, s.Third())
	win(s)
	lose(s)
	assert.Equal(t, 15.0, s.Stake())

	_, err = NewSectional(-1, 10)
	assert.Error(t, err)
}

func TestNew_CanonicalNameMatching(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Martingale", NameMartingale},
		{"martingale", NameMartingale},
		{"Reverse Martingale", NameReverseMartingale},
		{"reverse-martingale", NameReverseMartingale},
		{"DAlembert", NameDAlembert},
		{"d'alembert", NameDAlembert},
		{"Fibonacci", NameFibonacci},
		{"Paroli", NameParoli},
		{"Oscars Grind", NameOscarsGrind},
		{"oscar's grind", NameOscarsGrind},
		{"1-3-2-6", NameOneThreeTwoSix},
		{"Flat Betting", NameFlat},
		{"flat", NameFlat},
		{"Thirds", NameThirds},
	}
	for _, test := range tests {
		s, err := New(test.input, Params{BaseStake: 1, SecondStake: 1, ThirdStake: 1}, nil)
		require.NoError(t, err, "building %q", test.input)
		assert.Equal(t, test.want, s.Name(), "name for %q", test.input)
	}

	l, err := New("labouchere", Params{Sequence: []float64{1, 2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, NameLabouchere, l.Name())
}

func TestNew_RejectsUnknownSystem(t *testing.T) {
	_, err := New("red or black", Params{BaseStake: 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown betting system")
}

func TestNew_ValidatesParameters(t *testing.T) {
	_, err := New("martingale", Params{}, nil)
	assert.Error(t, err, "zero base stake")

	_, err = New("martingale", Params{BaseStake: -5}, nil)
	assert.Error(t, err)

	_, err = New("labouchere", Params{}, nil)
	assert.Error(t, err, "empty sequence")

	_, err = New("oscars grind", Params{BaseStake: 1, GrindGoal: -2}, nil)
	assert.Error(t, err)
}

func TestNew_GrindGoalDefaultsToOne(t *testing.T) {
	s, err := New("oscars grind", Params{BaseStake: 1}, nil)
	require.NoError(t, err)

	o, ok := s.(*OscarsGrind)
	require.True(t, ok)
	assert.Equal(t, 1, o.Goal())
}

func TestDescribe_CoversEveryName(t *testing.T) {
	for _, name := range Names() {
		assert.NotEmpty(t, Describe(name), "description for %s", name)
	}
	assert.Empty(t, Describe("nonsense"))
}

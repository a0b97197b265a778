package bet

import (
	"testing"

	"github.com/lox/roulettelab/internal/wheel"
	"github.com/stretchr/testify/assert"
)

func TestResolve_CoverageTable(t *testing.T) {
	tests := []struct {
		betType Type
		size    int
		payout  int
		in      []wheel.Outcome
		out     []wheel.Outcome
	}{
		{Single, 1, 35, []wheel.Outcome{0}, []wheel.Outcome{1, 36}},
		{Split, 2, 17, []wheel.Outcome{0, 1}, []wheel.Outcome{2}},
		{Corner, 4, 8, []wheel.Outcome{0, 1, 2, 3}, []wheel.Outcome{4}},
		{Line, 6, 5, []wheel.Outcome{0, 5}, []wheel.Outcome{6}},
		{Dozen, 12, 2, []wheel.Outcome{1, 12}, []wheel.Outcome{0, 13}},
		{EvenChance, 18, 1, []wheel.Outcome{1, 18}, []wheel.Outcome{0, 19}},
	}

	for _, test := range tests {
		c := Resolve(test.betType)
		assert.Equal(t, test.betType, c.Bet)
		assert.Equal(t, test.size, c.Size(), "size of %s", test.betType)
		assert.Equal(t, test.payout, c.Payout, "payout of %s", test.betType)
		for _, o := range test.in {
			assert.True(t, c.Covers(o), "%s should cover %s", test.betType, o)
		}
		for _, o := range test.out {
			assert.False(t, c.Covers(o), "%s should not cover %s", test.betType, o)
		}
	}
}

func TestResolve_UnknownDefaultsToSingle(t *testing.T) {
	c := Resolve(Type("red-black"))
	assert.Equal(t, Single, c.Bet)
	assert.Equal(t, 35, c.Payout)
	assert.True(t, c.Covers(0))
	assert.False(t, c.Covers(1))
}

func TestCovers_DoubleZeroNeverCovered(t *testing.T) {
	for _, betType := range Types() {
		c := Resolve(betType)
		assert.False(t, c.Covers(wheel.DoubleZero), "%s must not cover 00", betType)
	}
}

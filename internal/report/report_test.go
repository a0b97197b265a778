package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/roulettelab/internal/sim"
	"github.com/lox/roulettelab/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestSparkline_Empty(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 60))
	assert.Equal(t, "", Sparkline([]float64{1, 2}, 0))
}

func TestSparkline_FlatSeriesUsesLowestBlock(t *testing.T) {
	line := Sparkline([]float64{5, 5, 5}, 60)
	assert.Equal(t, "▁▁▁", line)
}

func TestSparkline_SpansFullRange(t *testing.T) {
	line := Sparkline([]float64{0, 100}, 60)
	assert.Equal(t, "▁█", line)
}

func TestSparkline_ResamplesToWidth(t *testing.T) {
	values := make([]float64, 600)
	for i := range values {
		values[i] = float64(i)
	}
	line := Sparkline(values, 60)
	assert.Equal(t, 60, len([]rune(line)))
}

func TestRender_IncludesKeyFigures(t *testing.T) {
	r := &sim.Result{
		InitialBalance:  1000,
		FinalBalance:    1150,
		Spins:           3,
		Wins:            2,
		Losses:          1,
		LongestStreak:   2,
		Halt:            sim.HaltMaxSpins,
		BalanceOverTime: []float64{1050, 1100, 1150},
		History: []sim.Record{
			{Net: 50}, {Net: 50}, {Net: 50},
		},
	}

	var buf bytes.Buffer
	Render(&buf, Info{
		System:   "Martingale",
		Wheel:    "American",
		BetType:  "single",
		Coverage: 1,
		Seed:     42,
	}, r, stats.Summarize(r))

	out := buf.String()
	assert.Contains(t, out, "Martingale")
	assert.Contains(t, out, "American")
	assert.Contains(t, out, "single (1 numbers)")
	assert.Contains(t, out, "$1000.00")
	assert.Contains(t, out, "$1150.00")
	assert.Contains(t, out, "+$150.00")
	assert.Contains(t, out, "max spins reached")
	assert.Contains(t, out, "42")
}

func TestRender_OmitsBetTypeForThirds(t *testing.T) {
	r := &sim.Result{
		InitialBalance: 1000,
		FinalBalance:   985,
		Spins:          1,
		Losses:         1,
		Halt:           sim.HaltMaxSpins,
		History:        []sim.Record{{Net: -15}},
	}

	var buf bytes.Buffer
	Render(&buf, Info{System: "Thirds", Wheel: "American"}, r, nil)

	assert.False(t, strings.Contains(buf.String(), "Bet Type"))
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "+$10.00", signedMoney(10))
	assert.Equal(t, "-$2.50", signedMoney(-2.5))
	assert.Equal(t, "+$0.00", signedMoney(0))
}

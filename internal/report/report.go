// Package report renders a completed run for the terminal: a summary
// panel, a balance-over-time sparkline and a win/loss distribution bar.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/roulettelab/internal/sim"
	"github.com/lox/roulettelab/internal/stats"
)

// Info carries run metadata the result itself does not know.
type Info struct {
	System   string
	Wheel    string
	BetType  string
	Coverage int // numbers covered, 0 for thirds play
	Seed     int64
}

// Render writes the full report for one run.
func Render(w io.Writer, info Info, r *sim.Result, sum *stats.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styled(titleStyle, "Simulation Results"))
	fmt.Fprintln(w)

	row(w, "Betting System", info.System)
	row(w, "Wheel Type", info.Wheel)
	if info.BetType != "" {
		row(w, "Bet Type (coverage)", fmt.Sprintf("%s (%d numbers)", info.BetType, info.Coverage))
	}
	if info.Seed != 0 {
		row(w, "Seed", fmt.Sprintf("%d", info.Seed))
	}
	row(w, "Initial Balance", money(r.InitialBalance))
	row(w, "Final Balance", money(r.FinalBalance))
	row(w, "Total Spins", fmt.Sprintf("%d", r.Spins))
	row(w, "Total Wins", styled(winStyle, fmt.Sprintf("%d", r.Wins)))
	row(w, "Total Losses", styled(lossStyle, fmt.Sprintf("%d", r.Losses)))
	row(w, "Net Profit/Loss", signedMoney(r.Net()))
	row(w, "Halt Reason", r.Halt.String())
	row(w, "Longest Winning Streak", fmt.Sprintf("%d", r.LongestStreak))
	row(w, "Longest Streak Winnings", money(r.LongestStreakWinnings))

	if sum != nil && sum.Spins > 0 {
		fmt.Fprintln(w)
		row(w, "Mean Net/Spin", signedMoney(sum.Mean()))
		row(w, "Median Net/Spin", signedMoney(sum.Median()))
		row(w, "Std Dev", money(sum.StdDev()))
		row(w, "Max Drawdown", money(sum.MaxDrawdown))
		row(w, "P5 / P95 Net", fmt.Sprintf("%s / %s", signedMoney(sum.Percentile(0.05)), signedMoney(sum.Percentile(0.95))))
	}

	if len(r.BalanceOverTime) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styled(labelStyle, "Balance over time"))
		fmt.Fprintln(w, styled(chartStyle, Sparkline(r.BalanceOverTime, 60)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styled(labelStyle, "Win/loss distribution"))
	renderDistribution(w, r.Wins, r.Losses)
	fmt.Fprintln(w)
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", styled(labelStyle, fmt.Sprintf("%-24s", label+":")), styled(valueStyle, value))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func signedMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("+$%.2f", v)
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a fixed-width block-character chart.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := resample(values, width)
	lo, hi := sampled[0], sampled[0]
	for _, v := range sampled {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	span := hi - lo
	for _, v := range sampled {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

// resample reduces values to at most width points by averaging buckets.
func resample(values []float64, width int) []float64 {
	if len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		if end <= start {
			end = start + 1
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

func renderDistribution(w io.Writer, wins, losses int) {
	const barWidth = 40
	max := wins
	if losses > max {
		max = losses
	}
	if max == 0 {
		max = 1
	}
	winBar := strings.Repeat("█", wins*barWidth/max)
	lossBar := strings.Repeat("█", losses*barWidth/max)
	fmt.Fprintf(w, "%s %s %d\n", styled(labelStyle, "Wins  "), styled(winStyle, winBar), wins)
	fmt.Fprintf(w, "%s %s %d\n", styled(labelStyle, "Losses"), styled(lossStyle, lossBar), losses)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lox/roulettelab/internal/sim"
	"github.com/lox/roulettelab/internal/strategy"
)

// stdinContinue builds the interactive continue-after-win decision: it
// prints the run status, then reads yes/no until it gets one. EOF counts
// as a no.
func stdinContinue(in io.Reader, out io.Writer, strat strategy.Strategy) sim.ContinueFunc {
	scanner := bufio.NewScanner(in)
	return func(status sim.Status) bool {
		fmt.Fprintln(out, "\n--- Current Status ---")
		fmt.Fprintf(out, "Spin Number: %d\n", status.Spin)
		fmt.Fprintf(out, "Current Balance: $%.2f\n", status.Balance)
		fmt.Fprintf(out, "Total Wins: %d\n", status.Wins)
		fmt.Fprintf(out, "Total Losses: %d\n", status.Losses)

		switch s := strat.(type) {
		case *strategy.Labouchere:
			fmt.Fprintf(out, "Current Sequence: %v\n", s.Sequence())
		case *strategy.OneThreeTwoSix:
			fmt.Fprintf(out, "Current Step in Sequence: %d\n", s.Step()+1)
			fmt.Fprintf(out, "Current Bet: $%.2f\n", s.Stake())
		case *strategy.OscarsGrind:
			fmt.Fprintf(out, "Current Grind: %d\n", s.Grind())
			fmt.Fprintf(out, "Grind Goal: %d\n", s.Goal())
		case *strategy.Sectional:
			fmt.Fprintf(out, "Current Bet on Second Third: $%.2f\n", s.Second())
			fmt.Fprintf(out, "Current Bet on Third Third: $%.2f\n", s.Third())
		default:
			fmt.Fprintf(out, "Current Bet: $%.2f\n", status.NextStake)
		}
		fmt.Fprintf(out, "Net Profit/Loss: $%.2f\n", status.Net)
		fmt.Fprintln(out, "----------------------")

		for {
			fmt.Fprint(out, "You won! Do you want to continue gambling? (yes/no): ")
			if !scanner.Scan() {
				return false
			}
			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "yes", "y":
				return true
			case "no", "n":
				return false
			default:
				fmt.Fprintln(out, "Invalid input. Please enter 'yes' or 'no'.")
			}
		}
	}
}

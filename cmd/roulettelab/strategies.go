package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/roulettelab/internal/bet"
	"github.com/lox/roulettelab/internal/strategy"
)

type StrategiesCmd struct{}

func (c *StrategiesCmd) Run(logger *log.Logger) error {
	fmt.Println("Betting systems:")
	for _, name := range strategy.Names() {
		fmt.Printf("  %-20s %s\n", name, strategy.Describe(name))
	}
	fmt.Println()
	fmt.Println("Bet types (coverage on the table):")
	for _, t := range bet.Types() {
		fmt.Printf("  %-20s %s\n", t, bet.Describe(t))
	}
	return nil
}

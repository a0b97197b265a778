package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/roulettelab/internal/bet"
	"github.com/lox/roulettelab/internal/randutil"
	"github.com/lox/roulettelab/internal/report"
	"github.com/lox/roulettelab/internal/sim"
	"github.com/lox/roulettelab/internal/stats"
	"github.com/lox/roulettelab/internal/strategy"
	"github.com/lox/roulettelab/internal/tui"
	"github.com/lox/roulettelab/internal/wheel"
)

type SimulateCmd struct {
	Balance       float64       `default:"1000" help:"Initial balance"`
	Wheel         string        `default:"American" enum:"European,American" help:"Wheel type"`
	System        string        `default:"Martingale" help:"Betting system (see 'roulettelab strategies')"`
	BetType       string        `default:"single" help:"Bet coverage: single, split, corner, line, dozen, even-chance"`
	Stake         float64       `default:"10" help:"Base stake"`
	Sequence      []float64     `help:"Labouchere sequence, e.g. 1,2,3"`
	Second        float64       `default:"5" help:"Thirds: stake on the second section"`
	Third         float64       `default:"10" help:"Thirds: stake on the third section"`
	GrindGoal     int           `default:"1" help:"Oscar's Grind: wins per cycle"`
	Spins         int           `default:"1000" help:"Maximum spins to simulate"`
	Seed          int64         `default:"0" help:"RNG seed (0 picks one from the clock)"`
	Prompt        bool          `help:"Ask after every win whether to continue"`
	PromptTimeout time.Duration `default:"0" help:"Auto-continue when a prompt goes unanswered this long"`
	Watch         bool          `help:"Watch the run live"`
	Delay         time.Duration `default:"0" help:"Pause between spins (watch mode pacing)"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, err := wheel.New(wheel.Type(c.Wheel), randutil.New(seed))
	if err != nil {
		return err
	}

	strat, err := strategy.New(c.System, strategy.Params{
		BaseStake:   c.Stake,
		Sequence:    c.Sequence,
		SecondStake: c.Second,
		ThirdStake:  c.Third,
		GrindGoal:   c.GrindGoal,
	}, logger)
	if err != nil {
		return err
	}

	coverage := bet.Resolve(bet.Type(c.BetType))

	cfg := sim.Config{
		Balance:        c.Balance,
		MaxSpins:       c.Spins,
		Wheel:          w,
		Strategy:       strat,
		Coverage:       coverage,
		Sections:       w.Sections(),
		PromptAfterWin: c.Prompt,
		Delay:          c.Delay,
		Logger:         logger,
	}

	var result *sim.Result
	if c.Watch {
		result, err = tui.Watch(cfg)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("watch aborted before the run finished")
			return nil
		}
	} else {
		if c.Prompt {
			cont := stdinContinue(os.Stdin, os.Stdout, strat)
			if c.PromptTimeout > 0 {
				cont = sim.WithTimeout(cont, c.PromptTimeout, nil, logger)
			}
			cfg.Continue = cont
		}
		engine, err := sim.New(cfg)
		if err != nil {
			return err
		}
		result = engine.Run()
	}

	info := report.Info{
		System:  strat.Name(),
		Wheel:   c.Wheel,
		Seed:    seed,
		BetType: string(coverage.Bet),
	}
	if _, thirds := strat.(*strategy.Sectional); thirds {
		info.BetType = ""
	} else {
		info.Coverage = coverage.Size()
	}

	report.Render(os.Stdout, info, result, stats.Summarize(result))
	return nil
}

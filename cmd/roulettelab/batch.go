package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/roulettelab/internal/randutil"
	"github.com/lox/roulettelab/internal/scenario"
	"github.com/lox/roulettelab/internal/sim"
	"github.com/lox/roulettelab/internal/stats"
	"golang.org/x/sync/errgroup"
)

type BatchCmd struct {
	File        string `arg:"" type:"existingfile" help:"HCL scenario file"`
	Seed        int64  `default:"0" help:"Master seed (0 picks one from the clock)"`
	Concurrency int    `default:"4" help:"Scenarios run in parallel"`
}

func (c *BatchCmd) Run(logger *log.Logger) error {
	file, err := scenario.Load(c.File)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Running %d scenarios from %s (seed: %d)\n\n", len(file.Simulations), c.File, seed)

	// Each scenario gets its own engine, wheel and strategy; engines are
	// single-threaded, only distinct runs proceed in parallel.
	results := make([]*sim.Result, len(file.Simulations))
	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for i, sc := range file.Simulations {
		g.Go(func() error {
			cfg, err := sc.Build(randutil.Derive(seed, i), logger.With("scenario", sc.Name))
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			engine, err := sim.New(cfg)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results[i] = engine.Run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%-20s %-18s %6s %6s %6s %12s %12s %10s  %s\n",
		"SCENARIO", "SYSTEM", "SPINS", "WINS", "LOSSES", "FINAL", "NET", "MEAN/SPIN", "HALT")
	for i, sc := range file.Simulations {
		r := results[i]
		sum := stats.Summarize(r)
		fmt.Printf("%-20s %-18s %6d %6d %6d %12.2f %+12.2f %+10.4f  %s\n",
			sc.Name, sc.Strategy, r.Spins, r.Wins, r.Losses,
			r.FinalBalance, r.Net(), sum.Mean(), r.Halt)
	}
	return nil
}

package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`
	Verbose bool             `short:"v" help:"Verbose logging"`

	Simulate   SimulateCmd   `cmd:"" help:"Run a single simulation"`
	Batch      BatchCmd      `cmd:"" help:"Run every simulation in an HCL scenario file"`
	Strategies StrategiesCmd `cmd:"" help:"List the available betting systems and bet types"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roulettelab"),
		kong.Description("Simulate roulette betting systems without risking real money"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

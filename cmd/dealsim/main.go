package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/dealsim/internal/config"
	"github.com/lox/dealsim/internal/report"
	"github.com/lox/dealsim/internal/simulator"
	"github.com/lox/dealsim/internal/stats"
	"github.com/lox/dealsim/internal/strategy"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `help:"Show version"`
	Simulate   SimulateCmd      `cmd:"" default:"withargs" help:"Run the strategy simulation"`
	Strategies StrategiesCmd    `cmd:"" help:"List the built-in strategies"`
}

type SimulateCmd struct {
	Games   int      `help:"Games per strategy (overrides the config file)"`
	Seed    int64    `help:"RNG seed (0 for a time-based seed)"`
	Workers int      `help:"Parallel workers (0 for one per CPU)"`
	Config  string   `type:"path" help:"HCL configuration file"`
	Output  string   `default:"text" enum:"text,json" help:"Report format"`
	Out     string   `type:"path" help:"Write the report to a file instead of stdout"`
	Only    []string `help:"Run only the named strategies"`
	Verbose bool     `short:"v" help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if len(c.Only) > 0 {
		cfg.Simulation.Strategies = c.Only
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var logger *log.Logger
	if c.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	strategies, err := strategy.Select(
		strategy.Canonical(cfg.Simulation.TargetAmount),
		cfg.Simulation.Strategies)
	if err != nil {
		return err
	}

	table, err := cfg.Table()
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Games:   cfg.Simulation.Games,
		Seed:    seed,
		Workers: cfg.Simulation.Workers,
		Table:   table,
		Rules:   cfg.Rules(),
		Logger:  logger,
	})

	startTime := time.Now()
	results, err := sim.Run(strategies)
	if err != nil {
		return err
	}
	duration := time.Since(startTime)

	bands := cfg.HistogramBands()
	aggregates := make([]stats.Aggregate, 0, len(strategies))
	for _, strat := range strategies {
		agg, err := stats.Compute(strat.Name(), results[strat.Name()], bands)
		if err != nil {
			return err
		}
		aggregates = append(aggregates, agg)
	}

	totalGames := cfg.Simulation.Games * len(strategies)
	rep := &report.Report{
		Metadata: report.Metadata{
			StartTime:        startTime,
			DurationSeconds:  duration.Seconds(),
			GamesPerStrategy: cfg.Simulation.Games,
			Seed:             seed,
			GamesPerSecond:   float64(totalGames) / duration.Seconds(),
		},
		Strategies: aggregates,
	}

	if c.Out != "" {
		var buf bytes.Buffer
		reporter := report.NewReporter(&buf)
		if c.Output == "json" {
			err = reporter.WriteJSON(rep)
		} else {
			err = reporter.WriteText(rep)
		}
		if err != nil {
			return err
		}
		return report.SaveFile(c.Out, buf.Bytes())
	}

	reporter := report.NewReporter(os.Stdout)
	if c.Output == "json" {
		return reporter.WriteJSON(rep)
	}
	return reporter.WriteText(rep)
}

type StrategiesCmd struct{}

func (c *StrategiesCmd) Run() error {
	for _, info := range strategy.Describe() {
		fmt.Printf("%-14s %-20s %s\n", info.Name, info.Nickname, info.Rule)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dealsim"),
		kong.Description("Deal or No Deal strategy simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

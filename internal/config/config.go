// Package config loads and validates simulation run configuration from HCL
// files. A missing file yields the default configuration; CLI flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/dealsim/internal/game"
	"github.com/lox/dealsim/internal/prize"
	"github.com/lox/dealsim/internal/stats"
)

// CanonicalBoardSize is the number of boxes on the show board. Configured
// prize tables must match it; synthetic boards for tests bypass the config
// layer and build prize.Table directly.
const CanonicalBoardSize = 22

// Config is the complete run configuration.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Game       *GameSettings       `hcl:"game,block"`
	Bands      []BandSettings      `hcl:"band,block"`
}

// SimulationSettings controls batch size, seeding and parallelism.
type SimulationSettings struct {
	Games      int      `hcl:"games,optional"`
	Seed       int64    `hcl:"seed,optional"`
	Workers    int      `hcl:"workers,optional"`
	Strategies []string `hcl:"strategies,optional"`

	// TargetAmount is the walk-away threshold for the target strategy.
	TargetAmount float64 `hcl:"target_amount,optional"`
}

// GameSettings overrides the board and the banker's behaviour.
type GameSettings struct {
	Prizes         []float64 `hcl:"prizes,optional"`
	Schedule       []int     `hcl:"schedule,optional"`
	OfferFractions []float64 `hcl:"offer_fractions,optional"`
}

// BandSettings defines one histogram band. Max 0 or omitted means unbounded,
// allowed only on the last band.
type BandSettings struct {
	Label string  `hcl:"label,label"`
	Max   float64 `hcl:"max,optional"`
}

// DefaultConfig returns the configuration of a standard run: 100k games per
// strategy on the canonical board with the standard schedule and bands.
func DefaultConfig() *Config {
	rules := game.DefaultRules()
	bands := make([]BandSettings, 0, 5)
	for _, b := range stats.DefaultBands() {
		bs := BandSettings{Label: b.Label}
		if !math.IsInf(b.Max, 1) {
			bs.Max = b.Max
		}
		bands = append(bands, bs)
	}
	return &Config{
		Simulation: &SimulationSettings{
			Games:        100000,
			TargetAmount: 100000,
		},
		Game: &GameSettings{
			Prizes:         prize.Canonical(),
			Schedule:       rules.Schedule,
			OfferFractions: rules.OfferFractions,
		},
		Bands: bands,
	}
}

// Load reads configuration from an HCL file. A missing file returns the
// defaults; a present file is decoded and backfilled with defaults for
// anything it leaves out.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Simulation == nil {
		config.Simulation = defaults.Simulation
	}
	if config.Game == nil {
		config.Game = defaults.Game
	}
	if config.Simulation.Games == 0 {
		config.Simulation.Games = defaults.Simulation.Games
	}
	if config.Simulation.TargetAmount == 0 {
		config.Simulation.TargetAmount = defaults.Simulation.TargetAmount
	}
	if len(config.Game.Prizes) == 0 {
		config.Game.Prizes = defaults.Game.Prizes
	}
	if len(config.Game.Schedule) == 0 {
		config.Game.Schedule = defaults.Game.Schedule
	}
	if len(config.Game.OfferFractions) == 0 {
		config.Game.OfferFractions = defaults.Game.OfferFractions
	}
	if len(config.Bands) == 0 {
		config.Bands = defaults.Bands
	}
	return &config, nil
}

// Validate reports the first fatal configuration error, before any
// simulation runs.
func (c *Config) Validate() error {
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation: games is %d, must be positive", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers is %d, must not be negative", c.Simulation.Workers)
	}
	if c.Simulation.TargetAmount <= 0 {
		return fmt.Errorf("simulation: target_amount is %v, must be positive", c.Simulation.TargetAmount)
	}

	if len(c.Game.Prizes) != CanonicalBoardSize {
		return fmt.Errorf("game: prize table has %d values, want %d", len(c.Game.Prizes), CanonicalBoardSize)
	}
	table, err := c.Table()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if err := c.Rules().Validate(table.Len()); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	if err := stats.ValidateBands(c.HistogramBands()); err != nil {
		return fmt.Errorf("bands: %w", err)
	}
	return nil
}

// Table builds the prize table from configuration.
func (c *Config) Table() (*prize.Table, error) {
	return prize.NewTable(c.Game.Prizes)
}

// Rules builds the game rules from configuration.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		Schedule:       c.Game.Schedule,
		OfferFractions: c.Game.OfferFractions,
	}
}

// HistogramBands converts the configured bands, mapping a zero bound to an
// unbounded top band.
func (c *Config) HistogramBands() []stats.Band {
	bands := make([]stats.Band, 0, len(c.Bands))
	for _, b := range c.Bands {
		max := b.Max
		if max == 0 {
			max = math.Inf(1)
		}
		bands = append(bands, stats.Band{Label: b.Label, Max: max})
	}
	return bands
}

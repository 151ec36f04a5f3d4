package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dealsim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 100000, cfg.Simulation.Games)
	assert.Equal(t, 100000.0, cfg.Simulation.TargetAmount)
	assert.Len(t, cfg.Game.Prizes, CanonicalBoardSize)
	assert.Len(t, cfg.Game.Schedule, 9)
	assert.Len(t, cfg.Game.OfferFractions, 9)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := writeConfig(t, `
simulation {
  games         = 500
  seed          = 7
  workers       = 2
  target_amount = 50000
  strategies    = ["always-play", "target"]
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Simulation.Games)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, 50000.0, cfg.Simulation.TargetAmount)
	assert.Equal(t, []string{"always-play", "target"}, cfg.Simulation.Strategies)

	// The game block was omitted, so board and rules come from defaults.
	assert.Len(t, cfg.Game.Prizes, CanonicalBoardSize)
	require.NoError(t, cfg.Validate())
}

func TestLoadGameOverrides(t *testing.T) {
	path := writeConfig(t, `
game {
  schedule        = [5, 3, 3, 3, 2, 1, 1, 1, 1]
  offer_fractions = [0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0]
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1.0, cfg.Game.OfferFractions[8])
}

func TestLoadBands(t *testing.T) {
	path := writeConfig(t, `
band "small" {
  max = 100
}

band "large" {}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	bands := cfg.HistogramBands()
	require.Len(t, bands, 2)
	assert.Equal(t, 100.0, bands[0].Max)
	assert.True(t, math.IsInf(bands[1].Max, 1), "zero bound maps to an unbounded band")
}

func TestLoadMalformedHCL(t *testing.T) {
	path := writeConfig(t, `simulation {`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "non-positive games",
			mutate:  func(c *Config) { c.Simulation.Games = 0 },
			wantErr: "must be positive",
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Simulation.Workers = -1 },
			wantErr: "must not be negative",
		},
		{
			name:    "non-positive target",
			mutate:  func(c *Config) { c.Simulation.TargetAmount = -5 },
			wantErr: "target_amount",
		},
		{
			name:    "wrong board size",
			mutate:  func(c *Config) { c.Game.Prizes = []float64{1, 2, 3} },
			wantErr: "want 22",
		},
		{
			name: "duplicate prizes",
			mutate: func(c *Config) {
				c.Game.Prizes = make([]float64, CanonicalBoardSize)
				for i := range c.Game.Prizes {
					c.Game.Prizes[i] = 5
				}
			},
			wantErr: "duplicate",
		},
		{
			name:    "schedule does not cover the board",
			mutate:  func(c *Config) { c.Game.Schedule = []int{1, 1} },
			wantErr: "opening schedule opens",
		},
		{
			name:    "fraction count mismatch",
			mutate:  func(c *Config) { c.Game.OfferFractions = []float64{0.5} },
			wantErr: "offer fraction table",
		},
		{
			name:    "fractions out of range",
			mutate:  func(c *Config) { c.Game.OfferFractions[0] = 1.5 },
			wantErr: "within [0,1]",
		},
		{
			name:    "bands not ascending",
			mutate:  func(c *Config) { c.Bands = []BandSettings{{Label: "a", Max: 100}, {Label: "b", Max: 50}, {Label: "c"}} },
			wantErr: "not above previous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/internal/util"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("HOLDEM_STARTING_CHIPS", "2500")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format, "defaults are kept")
	a.Equal(int64(42), cfg.Seed)
	a.Equal(3, cfg.Tables)
	a.Equal(200, cfg.MaxHands)
	a.Equal(2500, cfg.StartingChips, "the environment overrides the file")
	a.Equal([]string{"North", "East", "South", "West"}, cfg.Players)
	a.Equal("lazy-pineapple", cfg.Variant)
	a.Equal([]BlindLevel{{SmallBlind: 10, BigBlind: 20}, {SmallBlind: 20, BigBlind: 40}}, cfg.Blinds)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_STARTING_CHIPS", "3000")
	// ensure we aren't using a pointer
	cfg.Tables = 99
	cfg = Instance()
	a.Equal(2500, cfg.StartingChips)
	a.Equal(3, cfg.Tables)
}

func TestLoad_defaults(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("HOLDEM_PLAYERS", "Ann,Ben,Cal")()
	defer util.SetEnv("HOLDEM_LOG_LEVEL", "warn")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 1000, cfg.StartingChips)
	assert.Equal(t, "standard", cfg.Variant)
	assert.Equal(t, []string{"Ann", "Ben", "Cal"}, cfg.Players)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DefaultConfig().Blinds, cfg.Blinds)
}

func TestLoad_invalid(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("HOLDEM_TABLES", "0")()

	assert.EqualError(t, Load(), "tables must be at least 1")
}

func TestConfig_Validate(t *testing.T) {
	a := assert.New(t)

	a.NoError(DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Players = []string{"Solo"}
	a.EqualError(cfg.Validate(), "at least two players are required")

	cfg = DefaultConfig()
	cfg.StartingChips = 0
	a.EqualError(cfg.Validate(), "starting chips must be greater than zero")

	cfg = DefaultConfig()
	cfg.MaxHands = 0
	cfg.Limit = 100
	a.EqualError(cfg.Validate(), "max hands is required when there is a limit")

	cfg = DefaultConfig()
	cfg.Blinds = nil
	a.EqualError(cfg.Validate(), "at least one blind level is required")
}

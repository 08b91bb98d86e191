package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-engine/internal/util"
)

// BlindLevel is a level in the blind schedule
type BlindLevel struct {
	SmallBlind int `yaml:"smallBlind"`
	BigBlind   int `yaml:"bigBlind"`
}

// Config provides configuration for the Hold'em simulator
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level"`
		// Format is either "text" or "json"
		Format string `yaml:"format"`
	} `yaml:"log"`
	// Seed makes a simulation repeatable; 0 picks a seed from the clock
	Seed          int64        `yaml:"seed"`
	Tables        int          `yaml:"tables"`
	MaxHands      int          `yaml:"maxHands" envconfig:"max_hands"`
	StartingChips int          `yaml:"startingChips" envconfig:"starting_chips"`
	Players       []string     `yaml:"players"`
	Variant       string       `yaml:"variant"`
	Limit         int          `yaml:"limit"`
	HandsPerLevel int          `yaml:"handsPerLevel" envconfig:"hands_per_level"`
	Blinds        []BlindLevel `yaml:"blinds" ignored:"true"`
}

var config Config

// DefaultConfig returns the configuration used when there is no config file
func DefaultConfig() Config {
	c := Config{
		Seed:          0,
		Tables:        1,
		MaxHands:      500,
		StartingChips: 1000,
		Players:       []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"},
		Variant:       "standard",
		Limit:         0,
		HandsPerLevel: 10,
		Blinds: []BlindLevel{
			{SmallBlind: 5, BigBlind: 10},
			{SmallBlind: 10, BigBlind: 20},
			{SmallBlind: 25, BigBlind: 50},
			{SmallBlind: 50, BigBlind: 100},
			{SmallBlind: 100, BigBlind: 200},
		},
	}

	c.Log.Level = "info"
	c.Log.Format = "text"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values from the config file override the defaults, and environment variables
// prefixed with HOLDEM_ override the config file. A missing config file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate ensures the configuration can run a simulation
func (c Config) Validate() error {
	if c.Tables < 1 {
		return errors.New("tables must be at least 1")
	}

	if len(c.Players) < 2 {
		return errors.New("at least two players are required")
	}

	if c.StartingChips <= 0 {
		return errors.New("starting chips must be greater than zero")
	}

	if c.MaxHands < 0 {
		return errors.New("max hands must be >= 0")
	}

	if c.MaxHands == 0 && c.Limit > 0 {
		// a capped game may never produce a winner
		return errors.New("max hands is required when there is a limit")
	}

	if len(c.Blinds) == 0 {
		return errors.New("at least one blind level is required")
	}

	return nil
}

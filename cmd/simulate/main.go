package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"holdem-engine/internal/config"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/playable/poker/texasholdem"
	"holdem-engine/pkg/playable/poker/texasholdem/tournament"
)

// CLI is the command line for the simulator
// Flags left at their zero value fall back to the configuration
type CLI struct {
	Tables   int    `help:"Number of independent tables to run"`
	Hands    int    `help:"Maximum hands per table (0 uses the configuration)"`
	Seed     int64  `help:"RNG seed (0 uses the configuration, or the clock)"`
	Variant  string `help:"Variant: standard, lazy-pineapple"`
	Strategy string `default:"random" enum:"passive,random" help:"How every player decides: passive, random"`
	Verbose  bool   `short:"v" help:"Debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg := config.Instance()
	setupLogger(cfg, cli.Verbose)
	applyFlags(&cfg, cli)

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := simulate(signalCtx, logrus.StandardLogger(), cfg, cli.Strategy)
	for i, result := range results {
		if result == nil {
			continue
		}

		for _, standing := range result.Standings {
			logrus.WithFields(logrus.Fields{
				"table": i + 1,
				"place": standing.Place,
				"chips": standing.Chips,
				"hands": result.Hands,
			}).Info(standing.Name)
		}
	}

	if err != nil {
		logrus.WithError(err).Error("simulation failed")
		ctx.Exit(1)
	}

	ctx.Exit(0)
}

func applyFlags(cfg *config.Config, cli CLI) {
	if cli.Tables > 0 {
		cfg.Tables = cli.Tables
	}

	if cli.Hands > 0 {
		cfg.MaxHands = cli.Hands
	}

	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}

	if cli.Variant != "" {
		cfg.Variant = cli.Variant
	}
}

// simulate runs a tournament on every table concurrently
// Each table owns its players, deck and generator. Table seeds are derived from the
// configured seed, so the whole run can be replayed.
func simulate(ctx context.Context, logger logrus.FieldLogger, cfg config.Config, strategy string) ([]*tournament.Result, error) {
	variant, err := texasholdem.VariantFromString(cfg.Variant)
	if err != nil {
		return nil, err
	}

	schedule := make([]tournament.BlindLevel, len(cfg.Blinds))
	for i, level := range cfg.Blinds {
		schedule[i] = tournament.BlindLevel{SmallBlind: level.SmallBlind, BigBlind: level.BigBlind}
	}

	master := rng.NewSeeded(cfg.Seed)
	logger.WithFields(logrus.Fields{
		"seed":    master.Seed(),
		"tables":  cfg.Tables,
		"variant": variant.String(),
	}).Info("starting simulation")

	results := make([]*tournament.Result, cfg.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Tables; i++ {
		i := i
		tableSeed := master.Int63()
		strategySeed := master.Int63()
		tableLogger := logger.WithFields(logrus.Fields{
			"table": i + 1,
			"seed":  tableSeed,
		})

		g.Go(func() error {
			players := make([]*texasholdem.Player, len(cfg.Players))
			for j, name := range cfg.Players {
				players[j] = texasholdem.NewPlayer(name, cfg.StartingChips)
			}

			opts := tournament.Options{
				Schedule:      schedule,
				HandsPerLevel: cfg.HandsPerLevel,
				MaxHands:      cfg.MaxHands,
				Limit:         cfg.Limit,
				Variant:       variant,
				Generator:     rng.NewSeeded(tableSeed),
			}

			t, err := tournament.New(tableLogger, players, newStrategy(strategy, strategySeed), opts)
			if err != nil {
				return fmt.Errorf("table %d: %w", i+1, err)
			}

			result, err := t.Run(ctx)
			results[i] = result
			if err != nil {
				return fmt.Errorf("table %d: %w", i+1, err)
			}

			return nil
		})
	}

	return results, g.Wait()
}

func newStrategy(name string, seed int64) tournament.Strategy {
	if name == "passive" {
		return tournament.Passive{}
	}

	return tournament.Random{Generator: rng.NewSeeded(seed)}
}

func setupLogger(cfg config.Config, verbose bool) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	format := cfg.Log.Format
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

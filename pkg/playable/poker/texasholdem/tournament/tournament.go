package tournament

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker/texasholdem"
)

// BlindLevel is a level in the blind schedule
type BlindLevel struct {
	SmallBlind int `yaml:"smallBlind" json:"smallBlind"`
	BigBlind   int `yaml:"bigBlind" json:"bigBlind"`
}

// Options configures a tournament
type Options struct {
	// Schedule is the blind schedule, the first level is used for the first hand
	Schedule []BlindLevel
	// HandsPerLevel is how many hands are played before the blinds go up; 0 never raises them
	HandsPerLevel int
	// MaxHands stops the tournament early; 0 plays until there is a winner
	MaxHands  int
	Limit     int
	Variant   texasholdem.Variant
	Generator rng.Generator
}

// DefaultOptions returns the default options for a tournament
func DefaultOptions() Options {
	return Options{
		Schedule: []BlindLevel{
			{SmallBlind: 25, BigBlind: 50},
			{SmallBlind: 50, BigBlind: 100},
			{SmallBlind: 100, BigBlind: 200},
			{SmallBlind: 200, BigBlind: 400},
			{SmallBlind: 500, BigBlind: 1000},
		},
		HandsPerLevel: 10,
		MaxHands:      0,
		Limit:         0,
		Variant:       texasholdem.Standard,
	}
}

// Standing is where a player finished
type Standing struct {
	Place int       `json:"place"`
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Chips int       `json:"chips"`
	// EliminatedHand is the hand the player busted on, 0 if they were not eliminated
	EliminatedHand int `json:"eliminatedHand"`
}

// Result is the outcome of a tournament
type Result struct {
	Hands     int        `json:"hands"`
	Standings []Standing `json:"standings"`
}

// Tournament plays hands of Texas Hold'em until one player has all the chips
type Tournament struct {
	logger   logrus.FieldLogger
	options  Options
	game     *texasholdem.Game
	strategy Strategy

	strategies map[uuid.UUID]Strategy
	players    []*texasholdem.Player
	eliminated []Standing
	totalChips int
	level      int
}

// New returns a new tournament
// Every player uses the default strategy unless SetStrategy() is called
func New(logger logrus.FieldLogger, players []*texasholdem.Player, strategy Strategy, opts Options) (*Tournament, error) {
	if len(opts.Schedule) == 0 {
		return nil, playable.NewValidationError("the blind schedule must have at least one level")
	}

	if opts.HandsPerLevel < 0 {
		return nil, playable.NewValidationError("hands per level must be >= 0")
	}

	if opts.MaxHands < 0 {
		return nil, playable.NewValidationError("max hands must be >= 0")
	}

	if strategy == nil {
		return nil, playable.NewValidationError("a strategy is required")
	}

	gameOpts := texasholdem.Options{
		SmallBlind: opts.Schedule[0].SmallBlind,
		BigBlind:   opts.Schedule[0].BigBlind,
		Limit:      opts.Limit,
		Variant:    opts.Variant,
		Generator:  opts.Generator,
	}

	game, err := texasholdem.NewGame(logger, players, gameOpts)
	if err != nil {
		return nil, err
	}

	// the schedule is validated up front so the blinds can always go up
	for i, level := range opts.Schedule[1:] {
		if level.SmallBlind <= 0 || level.BigBlind < level.SmallBlind {
			return nil, playable.NewValidationError("blind level %d is invalid", i+2)
		}

		if opts.Limit > 0 && opts.Limit < level.BigBlind {
			return nil, playable.NewValidationError("blind level %d exceeds the limit of %d", i+2, opts.Limit)
		}
	}

	totalChips := 0
	for _, p := range players {
		totalChips += p.Chips()
	}

	return &Tournament{
		logger:     logger,
		options:    opts,
		game:       game,
		strategy:   strategy,
		strategies: make(map[uuid.UUID]Strategy),
		players:    game.Players(),
		eliminated: make([]Standing, 0),
		totalChips: totalChips,
	}, nil
}

// SetStrategy overrides the strategy for a single player
func (t *Tournament) SetStrategy(p *texasholdem.Player, strategy Strategy) {
	t.strategies[p.ID()] = strategy
}

func (t *Tournament) strategyFor(p *texasholdem.Player) Strategy {
	if s, ok := t.strategies[p.ID()]; ok {
		return s
	}

	return t.strategy
}

// Game returns the game being played
func (t *Tournament) Game() *texasholdem.Game {
	return t.game
}

// IsOver returns true if there is a winner or the hand limit was reached
func (t *Tournament) IsOver() bool {
	if len(t.game.Players()) < 2 {
		return true
	}

	return t.options.MaxHands > 0 && t.game.HandNumber() >= t.options.MaxHands
}

// PlayHand plays a single hand from the deal to the settlement
// Eliminated players are removed, and the button and blinds move for the next hand.
// If the hand fails before it is settled, every player gets their chips back.
func (t *Tournament) PlayHand() (*texasholdem.HandLog, error) {
	if t.IsOver() {
		return nil, playable.NewStateError("the tournament is over")
	}

	handLog, err := t.playHand()
	if err != nil {
		t.abortHand(err)
		return handLog, err
	}

	if err := t.verifyChips(); err != nil {
		return handLog, err
	}

	if err := t.nextHand(); err != nil {
		return handLog, err
	}

	return handLog, nil
}

func (t *Tournament) abortHand(cause error) {
	if t.game.Street() == texasholdem.StreetWaiting {
		return
	}

	t.logger.WithError(cause).WithField("hand", t.game.HandNumber()).Warn("aborting the hand")
	if err := t.game.AbortHand(); err != nil {
		t.logger.WithError(err).Error("could not abort the hand")
	}
}

func (t *Tournament) playHand() (*texasholdem.HandLog, error) {
	if err := t.game.DealCards(); err != nil {
		return nil, err
	}

	streets := []func() error{t.game.Flop, t.game.Turn, t.game.River}
	for i := 0; ; i++ {
		if err := newBettingRound(t.logger, t.game).play(t.strategyFor); err != nil {
			return nil, err
		}

		if i == len(streets) || t.game.PlayersInHand() < 2 {
			break
		}

		if err := streets[i](); err != nil {
			return nil, err
		}
	}

	if err := t.game.Showdown(); err != nil {
		return nil, err
	}

	return t.game.Settle()
}

// verifyChips ensures no chips were created or destroyed
func (t *Tournament) verifyChips() error {
	total := 0
	for _, p := range t.players {
		total += p.Chips()
	}

	if total != t.totalChips {
		return playable.NewSettlementError("tournament started with %d chips but has %d", t.totalChips, total)
	}

	return nil
}

func (t *Tournament) nextHand() error {
	eliminated, err := t.game.RemoveEliminated()
	if err != nil {
		return err
	}

	for _, p := range eliminated {
		t.eliminated = append(t.eliminated, Standing{
			ID:             p.ID(),
			Name:           p.Name,
			EliminatedHand: t.game.HandNumber(),
		})
	}

	if len(t.game.Players()) < 2 {
		return nil
	}

	if err := t.game.RotateBlinds(); err != nil {
		return err
	}

	return t.upBlinds()
}

func (t *Tournament) upBlinds() error {
	if t.options.HandsPerLevel == 0 {
		return nil
	}

	level := min(t.game.HandNumber()/t.options.HandsPerLevel, len(t.options.Schedule)-1)
	if level == t.level {
		return nil
	}

	t.level = level
	blinds := t.options.Schedule[level]
	return t.game.UpBlinds(blinds.SmallBlind, blinds.BigBlind)
}

// Run plays hands until the tournament is over or the context is cancelled
func (t *Tournament) Run(ctx context.Context) (*Result, error) {
	for !t.IsOver() {
		if err := ctx.Err(); err != nil {
			return t.Result(), err
		}

		if _, err := t.PlayHand(); err != nil {
			return t.Result(), err
		}
	}

	result := t.Result()
	t.logger.WithFields(logrus.Fields{
		"hands":  result.Hands,
		"winner": result.Standings[0].Name,
		"chips":  result.Standings[0].Chips,
	}).Info("tournament is over")

	return result, nil
}

// Result returns the current standings
// Players still seated are ranked by chips, then everybody else in the reverse order
// they were eliminated.
func (t *Tournament) Result() *Result {
	remaining := t.game.Players()
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Chips() > remaining[j].Chips()
	})

	standings := make([]Standing, 0, len(t.players))
	for _, p := range remaining {
		standings = append(standings, Standing{
			ID:    p.ID(),
			Name:  p.Name,
			Chips: p.Chips(),
		})
	}

	for i := len(t.eliminated) - 1; i >= 0; i-- {
		standings = append(standings, t.eliminated[i])
	}

	for i := range standings {
		standings[i].Place = i + 1
	}

	return &Result{
		Hands:     t.game.HandNumber(),
		Standings: standings,
	}
}

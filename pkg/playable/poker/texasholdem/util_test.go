package texasholdem

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable"
)

func setupPlayers(chips ...int) []*Player {
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = NewPlayer(fmt.Sprintf("player-%d", i), c)
	}

	return players
}

func testOptions(seed int64) Options {
	opts := DefaultOptions()
	opts.SmallBlind = 5
	opts.BigBlind = 10
	opts.Generator = rng.NewSeeded(seed)
	return opts
}

func setupNewGame(t *testing.T, opts Options, chips ...int) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), setupPlayers(chips...), opts)
	require.NoError(t, err)
	return game
}

// runOut deals the rest of the board and moves to the showdown
func runOut(t *testing.T, game *Game) {
	t.Helper()

	if game.Street() == StreetPreFlop {
		require.NoError(t, game.Flop())
	}

	if game.Street() == StreetFlop {
		require.NoError(t, game.Turn())
	}

	if game.Street() == StreetTurn {
		require.NoError(t, game.River())
	}

	require.NoError(t, game.Showdown())
}

// setHand replaces every card the player can see
func setHand(p *Player, cards string) {
	p.hand = deck.CardsFromString(cards)
}

func totalChips(game *Game) int {
	total := 0
	for _, p := range game.players {
		total += p.Chips()
	}

	return total
}

func assertValidationError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()

	var validationErr playable.ValidationError
	assert.True(t, errors.As(err, &validationErr), msgAndArgs...)
}

func assertStateError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()

	var stateErr playable.StateError
	assert.True(t, errors.As(err, &stateErr), msgAndArgs...)
}

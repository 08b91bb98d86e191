package tournament

import (
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/action"
	"holdem-engine/pkg/playable/poker/texasholdem"
)

// Turn is what a player knows when it is their turn to act
type Turn struct {
	Player    *texasholdem.Player
	Street    texasholdem.Street
	Community deck.Hand
	Pot       int
	BigBlind  int

	// CurrentBet is the most anybody has put in on this street
	CurrentBet int
	// InPlay is what the player has put in on this street
	InPlay int
	ToCall int
	// MinRaise is the smallest total a bet or raise can be
	MinRaise int
	// MaxRaise is the total if the player puts in everything they can
	MaxRaise int
}

// Decision is the action a player takes
// For a bet or a raise, Amount is the player's total for the street
type Decision struct {
	Action action.Action
	Amount int
}

// Strategy decides what a player does on their turn
type Strategy interface {
	Decide(turn Turn) Decision
}

// StrategyFunc adapts a function into a Strategy
type StrategyFunc func(turn Turn) Decision

// Decide calls f(turn)
func (f StrategyFunc) Decide(turn Turn) Decision {
	return f(turn)
}

// Passive checks when it can and calls otherwise
type Passive struct{}

// Decide checks or calls
func (Passive) Decide(turn Turn) Decision {
	if turn.ToCall == 0 {
		return Decision{Action: action.Check}
	}

	return Decision{Action: action.Call}
}

// Random makes legal but random decisions
type Random struct {
	Generator rng.Generator
}

// Decide picks a random action
func (r Random) Decide(turn Turn) Decision {
	roll := r.Generator.Intn(100)
	switch {
	case roll < 15 && turn.ToCall > 0:
		return Decision{Action: action.Fold}
	case roll < 30 && turn.MaxRaise > turn.CurrentBet:
		amount := turn.MaxRaise
		if roll >= 18 && turn.MinRaise < turn.MaxRaise {
			amount = turn.MinRaise + r.Generator.Intn(turn.MaxRaise-turn.MinRaise)
		}

		if turn.CurrentBet == 0 {
			return Decision{Action: action.Bet, Amount: amount}
		}

		return Decision{Action: action.Raise, Amount: amount}
	}

	return Passive{}.Decide(turn)
}

package tournament

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker/action"
	"holdem-engine/pkg/playable/poker/texasholdem"
)

// bettingRound keeps track of the action on a single street
type bettingRound struct {
	logger  logrus.FieldLogger
	game    *texasholdem.Game
	players []*texasholdem.Player

	// inPlay is what each player put in on this street
	inPlay map[uuid.UUID]int
	// actionAmount is the current bet
	actionAmount int
	// raiseSize is the size of the last full bet or raise
	raiseSize int

	// actionStartIndex is where the action started, or changed (i.e., a raise)
	actionStartIndex int
	// actionAtIndex is how many players have acted since actionStartIndex
	actionAtIndex int
}

func newBettingRound(logger logrus.FieldLogger, game *texasholdem.Game) *bettingRound {
	players := game.Players()
	_, bigBlind := game.Blinds()

	r := &bettingRound{
		logger:    logger,
		game:      game,
		players:   players,
		inPlay:    make(map[uuid.UUID]int, len(players)),
		raiseSize: bigBlind,
	}

	n := len(players)
	if game.Street() == texasholdem.StreetPreFlop {
		// the blinds are already in
		for _, p := range players {
			r.inPlay[p.ID()] = game.Pot().Contribution(p)
		}

		r.actionAmount = bigBlind
		r.actionStartIndex = (game.BigBlindSeat() + 1) % n
	} else {
		r.actionStartIndex = (game.Dealer() + 1) % n
	}

	return r
}

// IsRoundOver returns true if all eligible players have acted
func (r *bettingRound) IsRoundOver() bool {
	return r.actionAtIndex >= len(r.players) || r.game.PlayersInHand() < 2
}

func (r *bettingRound) inTurn() *texasholdem.Player {
	return r.players[(r.actionStartIndex+r.actionAtIndex)%len(r.players)]
}

func (r *bettingRound) completeTurn() {
	r.actionAtIndex++
}

func (r *bettingRound) canAct(p *texasholdem.Player) bool {
	return r.game.MaxBet(p) > 0
}

// othersCanAct returns true if anybody besides p can still put chips in
func (r *bettingRound) othersCanAct(p *texasholdem.Player) bool {
	for _, o := range r.players {
		if o != p && r.canAct(o) {
			return true
		}
	}

	return false
}

func (r *bettingRound) turn(p *texasholdem.Player) Turn {
	inPlay := r.inPlay[p.ID()]
	toCall := max(r.actionAmount-inPlay, 0)
	_, bigBlind := r.game.Blinds()

	return Turn{
		Player:     p,
		Street:     r.game.Street(),
		Community:  r.game.Community(),
		Pot:        r.game.Pot().Size(),
		BigBlind:   bigBlind,
		CurrentBet: r.actionAmount,
		InPlay:     inPlay,
		ToCall:     toCall,
		MinRaise:   r.actionAmount + r.raiseSize,
		MaxRaise:   inPlay + r.game.MaxBet(p),
	}
}

// play asks each player for a decision until the betting is closed
func (r *bettingRound) play(strategyFor func(p *texasholdem.Player) Strategy) error {
	for !r.IsRoundOver() {
		p := r.inTurn()
		if !r.canAct(p) {
			r.completeTurn()
			continue
		}

		turn := r.turn(p)
		if turn.ToCall == 0 && !r.othersCanAct(p) {
			// nobody left to bet against
			r.completeTurn()
			continue
		}

		decision := strategyFor(p).Decide(turn)
		if err := r.apply(p, turn, decision); err != nil {
			return err
		}
	}

	return nil
}

func (r *bettingRound) apply(p *texasholdem.Player, turn Turn, decision Decision) error {
	if !decision.Action.IsValid() {
		return playable.NewValidationError("%s made an unknown decision: %s", p.Name, string(decision.Action))
	}

	amount := 0
	switch decision.Action {
	case action.Fold:
		if err := r.game.Fold(p); err != nil {
			return err
		}
	case action.Check:
		if turn.ToCall > 0 {
			return playable.NewValidationError("%s cannot check with an active bet", p.Name)
		}
	case action.Call:
		if turn.ToCall == 0 {
			return playable.NewValidationError("%s cannot call without an active bet", p.Name)
		}

		wagered, err := r.game.MakeBet(p, turn.ToCall)
		if err != nil {
			return err
		}

		r.inPlay[p.ID()] += wagered
		amount = r.inPlay[p.ID()]
	case action.Bet, action.Raise:
		total, err := r.betOrRaise(p, turn, decision)
		if err != nil {
			return err
		}

		amount = total
	}

	r.logger.WithFields(logrus.Fields{
		"hand":   r.game.HandNumber(),
		"street": turn.Street.String(),
		"player": p.Name,
	}).Debug(decision.Action.LogMessage(amount))

	r.completeTurn()
	return nil
}

func (r *bettingRound) betOrRaise(p *texasholdem.Player, turn Turn, decision Decision) (int, error) {
	if decision.Action == action.Bet && r.actionAmount > 0 {
		return 0, playable.NewValidationError("%s cannot bet, the bet is already %d", p.Name, r.actionAmount)
	}

	if decision.Action == action.Raise && r.actionAmount == 0 {
		return 0, playable.NewValidationError("%s cannot raise without a bet", p.Name)
	}

	total := min(decision.Amount, turn.MaxRaise)
	if total <= r.actionAmount {
		return 0, playable.NewValidationError("%s must raise to more than %d", p.Name, r.actionAmount)
	}

	// a short raise is only allowed when it puts the player all-in
	if total < turn.MinRaise && total < turn.MaxRaise {
		return 0, playable.NewValidationError("%s must raise to at least %d", p.Name, turn.MinRaise)
	}

	wagered, err := r.game.MakeBet(p, total-turn.InPlay)
	if err != nil {
		return 0, err
	}

	r.inPlay[p.ID()] += wagered
	total = r.inPlay[p.ID()]

	if raise := total - r.actionAmount; raise >= r.raiseSize {
		r.raiseSize = raise
	}

	r.actionAmount = total
	r.actionStartIndex = p.Seat()
	r.actionAtIndex = 0

	return total, nil
}

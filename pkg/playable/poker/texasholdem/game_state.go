package texasholdem

import (
	"github.com/google/uuid"
	"holdem-engine/pkg/playable/poker"
)

// GameState represents the state of the game
type GameState struct {
	Name       string        `json:"name"`
	Variant    Variant       `json:"variant"`
	HandNumber int           `json:"handNumber"`
	Street     Street        `json:"street"`
	Dealer     int           `json:"dealer"`
	SmallBlind int           `json:"smallBlind"`
	BigBlind   int           `json:"bigBlind"`
	Players    []*playerJSON `json:"players"`
	PokerState *poker.State  `json:"pokerState"`
}

// GetGameState returns a snapshot of the table
// Hole cards are only included for the player with the matching ID. Use uuid.Nil to
// hide every hand.
func (g *Game) GetGameState(viewer uuid.UUID) *GameState {
	players := make([]*playerJSON, len(g.players))
	for i, p := range g.players {
		pj := p.playerJSON(0)
		pj.Contribution = g.potManager.Contribution(p)
		if p.ID() != viewer && g.street != StreetShowdown {
			pj.Cards = nil
		}

		players[i] = pj
	}

	return &GameState{
		Name:       g.Name(),
		Variant:    g.options.Variant,
		HandNumber: g.handNumber,
		Street:     g.street,
		Dealer:     g.dealer,
		SmallBlind: g.smallBlind,
		BigBlind:   g.bigBlind,
		Players:    players,
		PokerState: g.getPokerState(),
	}
}

func (g *Game) getPokerState() *poker.State {
	return &poker.State{
		SmallBlind: g.options.SmallBlind,
		BigBlind:   g.options.BigBlind,
		Limit:      g.options.Limit,
		PotSize:    g.potManager.Size(),
		Pots:       g.potManager.Pots(),
		Community:  g.community.Clone(),
	}
}

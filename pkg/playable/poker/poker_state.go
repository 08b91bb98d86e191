package poker

import (
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// State provides the current state data for common poker values
type State struct {
	SmallBlind int             `json:"smallBlind"`
	BigBlind   int             `json:"bigBlind"`
	Limit      int             `json:"limit"`
	PotSize    int             `json:"potSize"`
	Pots       potmanager.Pots `json:"pots"`
	Community  deck.Hand       `json:"community"`
}

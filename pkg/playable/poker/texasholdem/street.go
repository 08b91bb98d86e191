package texasholdem

import (
	"encoding/json"
)

// Street represents where the hand is
// Streets only ever move forward: pre-flop, flop, turn, river, showdown
type Street int

// constants for Street
const (
	// StreetWaiting is between hands, before the cards are dealt
	StreetWaiting Street = iota
	StreetPreFlop
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
)

func (s Street) String() string {
	switch s {
	case StreetWaiting:
		return "waiting"
	case StreetPreFlop:
		return "pre-flop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	}

	return ""
}

// IsBettingRound returns true if bets can be made on the street
func (s Street) IsBettingRound() bool {
	return s >= StreetPreFlop && s <= StreetRiver
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

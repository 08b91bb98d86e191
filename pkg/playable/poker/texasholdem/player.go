package texasholdem

import (
	"fmt"

	"github.com/google/uuid"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/handanalyzer"
)

// Player is a player seated at the table
// A player is created once per session. The chip stack carries over between hands,
// while the cards and in-hand status are reset every hand.
type Player struct {
	id   uuid.UUID
	Name string

	chips int
	seat  int

	// hand is every card the player can see: hole cards first, then the community cards
	hand      deck.Hand
	holeCards int
	inHand    bool

	// rank is set at showdown
	rank *handanalyzer.HandRank
}

type playerJSON struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Seat         int       `json:"seat"`
	Chips        int       `json:"chips"`
	Cards        deck.Hand `json:"cards"`
	Folded       bool      `json:"folded"`
	Contribution int       `json:"contribution"`
	Hand         string    `json:"hand"`
	Winnings     int       `json:"winnings"`
}

// NewPlayer returns a new player with a stable identity
func NewPlayer(name string, chips int) *Player {
	return &Player{
		id:    uuid.New(),
		Name:  name,
		chips: chips,
		hand:  make(deck.Hand, 0, 7),
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (seat %d)", p.Name, p.seat)
}

// Chips returns the size of the player's stack
func (p *Player) Chips() int {
	return p.chips
}

// Hand returns a copy of every card visible to the player
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// HoleCards returns a copy of the player's private cards
func (p *Player) HoleCards() deck.Hand {
	n := p.holeCards
	if n > len(p.hand) {
		n = len(p.hand)
	}

	return p.hand[:n].Clone()
}

// InHand returns true if the player is still contesting the current hand
func (p *Player) InHand() bool {
	return p.inHand
}

// IsAllIn returns true if the player is in the hand with no chips behind
func (p *Player) IsAllIn() bool {
	return p.inHand && p.chips == 0
}

// Rank returns the player's hand rank from the last showdown, if any
func (p *Player) Rank() (handanalyzer.HandRank, bool) {
	if p.rank == nil {
		return handanalyzer.HandRank{}, false
	}

	return *p.rank, true
}

// Bet removes up to amount from the player's stack and returns what was actually wagered
// A player can never wager more than they have; asking for more puts them all-in
func (p *Player) Bet(amount int) int {
	if amount <= 0 {
		return 0
	}

	if amount > p.chips {
		amount = p.chips
	}

	p.chips -= amount
	return amount
}

// AddChips credits the player's stack
func (p *Player) AddChips(amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("cannot add %d chips", amount))
	}

	p.chips += amount
}

// Fold mucks the player's cards and takes them out of the hand
func (p *Player) Fold() {
	p.hand = p.hand[:0]
	p.holeCards = 0
	p.inHand = false
}

// DealCard adds a card to the player's visible cards
func (p *Player) DealCard(card deck.Card) {
	p.hand.AddCard(card)
}

// dealHoleCard adds a private card
func (p *Player) dealHoleCard(card deck.Card) {
	p.hand.AddCard(card)
	p.holeCards++
}

// newHand mucks the previous hand and puts the player back in
func (p *Player) newHand() {
	p.Fold()
	p.rank = nil
	p.inHand = true
}

func (p *Player) playerJSON(winnings int) *playerJSON {
	var cards deck.Hand
	var hand string
	if p.inHand {
		cards = p.HoleCards()
		if p.rank != nil {
			hand = p.rank.String()
		}
	}

	return &playerJSON{
		ID:       p.id,
		Name:     p.Name,
		Seat:     p.seat,
		Chips:    p.chips,
		Cards:    cards,
		Folded:   !p.inHand,
		Hand:     hand,
		Winnings: winnings,
	}
}

// potmanager.Participant interface

// ID returns the player's stable identity
func (p *Player) ID() uuid.UUID {
	return p.id
}

// Seat returns where the player is seated
func (p *Player) Seat() int {
	return p.seat
}

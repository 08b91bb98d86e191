package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"holdem-engine/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrDeckExhausted is an error when Draw() is attempted and there are no more cards
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a playing deck
type Deck struct {
	Cards  []Card `json:"cards"`
	burned Hand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
	d.burned = make(Hand, 0, 4)
}

// Shuffle rebuilds the full deck and shuffles it with the provided generator
// Any burned cards are returned to the deck
func (d *Deck) Shuffle(gen rng.Generator) {
	// we always want to shuffle from a full, unshuffled deck
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrDeckExhausted is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Burn draws the next card face down and discards it
func (d *Deck) Burn() error {
	card, err := d.Draw()
	if err != nil {
		return err
	}

	d.burned.AddCard(card)
	return nil
}

// Burned returns the cards that have been burned since the last shuffle
func (d *Deck) Burned() Hand {
	return d.burned.Clone()
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

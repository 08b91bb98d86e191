package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♥", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "10♥", Card{Rank: 10, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♦", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())

	assert.Panics(t, func() {
		_ = Card{Rank: 2, Suit: "stars"}.String()
	})
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"2c", Card{Rank: 2, Suit: Clubs}},
		{"10d", Card{Rank: 10, Suit: Diamonds}},
		{"0h", Card{Rank: 10, Suit: Hearts}},
		{"Th", Card{Rank: 10, Suit: Hearts}},
		{"Js", Card{Rank: Jack, Suit: Spades}},
		{"qd", Card{Rank: Queen, Suit: Diamonds}},
		{"KC", Card{Rank: King, Suit: Clubs}},
		{"Ah", Card{Rank: Ace, Suit: Hearts}},
		{"14s", Card{Rank: Ace, Suit: Spades}},
	}

	for _, tt := range tests {
		card, err := ParseCard(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, card, tt.in)
	}

	for _, bad := range []string{"", "1c", "15c", "2x", "Ahh", "!2c"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}

	assert.Panics(t, func() {
		CardFromString("zz")
	})
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("Ac").AceLowRank())
	assert.Equal(t, 13, CardFromString("Kc").AceLowRank())
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("Ah,Kh,0h")
	assert.Equal(t, "14h,13h,10h", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))
}

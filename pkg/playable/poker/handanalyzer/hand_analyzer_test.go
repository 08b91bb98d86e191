package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/pkg/deck"
)

func evaluate(s string) HandRank {
	return Evaluate(deck.CardsFromString(s))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		hand     Hand
		tiebreak []int
		desc     string
	}{
		{"royal flush", "Ah,Kh,Qh,Jh,0h,2c,3d", StraightFlush, []int{14}, "Royal flush"},
		{"wheel straight flush", "Ac,2c,3c,4c,5c,Kd,Kh", StraightFlush, []int{5}, "Straight flush, 5 high"},
		{"quads", "2s,2c,2h,2d,5s", FourOfAKind, []int{2, 5}, "Four of a kind, 2s"},
		{"quads over full house", "9c,9d,9h,9s,Kc,Kd,2h", FourOfAKind, []int{9, 13}, "Four of a kind, 9s"},
		{"full house", "7h,7c,7d,2s,2c", FullHouse, []int{7, 2}, "Full house, 7s full of 2s"},
		{"full house from two trips", "3c,3d,3h,4c,4d,4h,5c", FullHouse, []int{4, 3}, "Full house, 4s full of 3s"},
		{"flush from six suited", "2h,5h,7h,9h,Jh,Kh,Ac", Flush, []int{13, 11, 9, 7, 5}, "Flush, K high"},
		{"flush beats straight", "4h,5h,6c,7h,8d,Kh,2h", Flush, []int{13, 7, 5, 4, 2}, "Flush, K high"},
		{"wheel", "Ah,2c,3d,4s,5h", Straight, []int{5}, "Straight, 5 high"},
		{"broadway", "Ah,Kc,Qd,Js,10h,2c,2d", Straight, []int{14}, "Straight, A high"},
		{"straight with a pair", "5c,6d,7h,8s,9c,9d,2h", Straight, []int{9}, "Straight, 9 high"},
		{"six card straight", "2c,3d,4h,5s,6c,7d,Ah", Straight, []int{7}, "Straight, 7 high"},
		{"trips", "8c,8d,8h,Ks,4c,3d,2h", ThreeOfAKind, []int{8, 13, 4}, "Three of a kind, 8s"},
		{"two pair from three pairs", "Kc,Kd,9h,9s,4c,4d,2h", TwoPair, []int{13, 9, 4}, "Two pair, Ks and 9s"},
		{"two pair", "Jc,Jd,3h,3s,Ac", TwoPair, []int{11, 3, 14}, "Two pair, Js and 3s"},
		{"pair", "Qc,Qd,9h,7s,4c,3d,2h", OnePair, []int{12, 9, 7, 4}, "Pair of Qs"},
		{"high card", "Ah,Jd,9c,7s,3h,2d,4c", HighCard, []int{14, 11, 9, 7, 4}, "High card, A J 9 7 4"},
		{"pocket pair", "Ac,Ad", OnePair, []int{14}, "Pair of As"},
		{"two cards", "Kc,2d", HighCard, []int{13, 2}, "High card, K 2"},
		{"no straight with four cards", "2c,3d,4h,5s", HighCard, []int{5, 4, 3, 2}, "High card, 5 4 3 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := evaluate(tt.cards)
			assert.Equal(t, tt.hand, r.Hand)
			assert.Equal(t, tt.tiebreak, r.Tiebreak)
			assert.Equal(t, tt.desc, r.String())
		})
	}
}

func TestEvaluate_bestCards(t *testing.T) {
	a := assert.New(t)

	r := evaluate("Ah,2c,3d,4s,5h")
	a.Equal("5h,4s,3d,2c,14h", r.Cards.String())

	r = evaluate("2c,7h,9d,7c,7d,2s,Kc")
	a.Equal(FullHouse, r.Hand)
	a.Len(r.Cards, 5)
	a.Equal(7, r.Cards[0].Rank)
	a.Equal(7, r.Cards[2].Rank)
	a.Equal(2, r.Cards[3].Rank)

	r = evaluate("Ah,Kh,Qh,Jh,0h,2c,3d")
	a.Equal("14h,13h,12h,11h,10h", r.Cards.String())

	a.Equal(HighCard, Evaluate(nil).Hand)
}

func TestHandRank_Compare(t *testing.T) {
	a := assert.New(t)

	// the wheel is the lowest straight
	wheel := evaluate("Ah,2c,3d,4s,5h")
	six := evaluate("2c,3d,4s,5h,6c")
	a.True(six.Beats(wheel))
	a.False(wheel.Beats(six))
	a.True(wheel.Beats(evaluate("Ac,Ad,Ah,Kc,Qd")))

	// high card hands compare by descending ranks
	h1 := evaluate("Ah,Jd,9c,7s,3h")
	h2 := evaluate("Ah,Jd,9c,7s,2h")
	a.Equal(1, h1.Compare(h2))
	a.Equal(-1, h2.Compare(h1))

	// kickers on quads
	a.True(evaluate("2s,2c,2h,2d,6s").Beats(evaluate("2s,2c,2h,2d,5s")))

	// two pair kicker
	a.True(evaluate("Jc,Jd,3h,3s,Ac").Beats(evaluate("Jh,Js,3c,3d,Kc")))

	// same hand with different suits is a true tie
	a.True(evaluate("Ah,Kh,9c,7s,3h,2c,4d").Ties(evaluate("Ad,Kd,9s,7c,3c,2c,4d")))

	// the board plays for both
	board := "Ac,Kc,Qc,Jc,10c"
	a.True(evaluate(board + ",2h,3h").Ties(evaluate(board + ",9c,9d")))

	// ordering of categories
	ordered := []string{
		"Ac,Kd,9h,7s,2c",
		"Ac,Ad,9h,7s,2c",
		"Ac,Ad,9h,9s,2c",
		"Ac,Ad,Ah,9s,2c",
		"6c,5d,4h,3s,2c",
		"Kc,9c,7c,4c,2c",
		"2c,2d,2h,3s,3c",
		"2c,2d,2h,2s,3c",
		"6c,5c,4c,3c,2c",
	}
	for i := 1; i < len(ordered); i++ {
		better := evaluate(ordered[i])
		worse := evaluate(ordered[i-1])
		a.Equal(Hand(i), better.Hand)
		a.True(better.Beats(worse), "%s should beat %s", better, worse)
		a.Greater(better.GetStrength(), worse.GetStrength())
	}
}

func Test_forEachCombination(t *testing.T) {
	n := 0
	seen := make(map[[3]int]bool)
	forEachCombination(5, 3, func(indexes []int) {
		n++
		var key [3]int
		copy(key[:], indexes)
		seen[key] = true
		assert.True(t, indexes[0] < indexes[1] && indexes[1] < indexes[2])
	})

	assert.Equal(t, 10, n)
	assert.Len(t, seen, 10)
}

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Equal(t, "High card", HighCard.String())
	assert.Panics(t, func() {
		_ = Hand(42).String()
	})
}

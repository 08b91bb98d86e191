package handanalyzer

import (
	"fmt"
	"sort"
	"strings"

	"holdem-engine/pkg/deck"
)

// handSize is the number of cards that make up a poker hand
const handSize = 5

// strengthBase is larger than any rank, so a tiebreak key packs into an int without collisions
const strengthBase = 15

// HandRank is the result of analyzing a set of cards
// Ranks are compared by category first, then by the tiebreak key
type HandRank struct {
	Hand Hand `json:"hand"`
	// Tiebreak holds rank values ordered by significance, i.e., a full house of
	// sevens over twos is [7, 2]
	Tiebreak []int `json:"tiebreak"`
	// Cards is the best five-card hand, ordered by significance
	Cards deck.Hand `json:"cards"`
}

// Evaluate returns the best hand that can be made from the cards
// When there are more than five cards, every five-card subset is considered.
// With fewer than five cards, the cards are ranked as they are.
func Evaluate(cards []deck.Card) HandRank {
	if len(cards) <= handSize {
		return evaluateFive(cards)
	}

	var best HandRank
	found := false
	combination := make([]deck.Card, handSize)
	forEachCombination(len(cards), handSize, func(indexes []int) {
		for i, index := range indexes {
			combination[i] = cards[index]
		}

		rank := evaluateFive(combination)
		if !found || rank.Compare(best) > 0 {
			best = rank
			found = true
		}
	})

	return best
}

// forEachCombination calls fn with every k-sized set of indexes from [0, n)
func forEachCombination(n, k int, fn func(indexes []int)) {
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		// find the right-most index that can still move right
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

type rankGroup struct {
	rank  int
	count int
}

// evaluateFive ranks up to five cards as a single hand
func evaluateFive(cards []deck.Card) HandRank {
	if len(cards) == 0 {
		return HandRank{Hand: HighCard, Tiebreak: []int{}, Cards: deck.Hand{}}
	}

	counts := make(map[int]int, len(cards))
	ranks := make([]int, 0, len(cards))
	for _, card := range cards {
		counts[card.Rank]++
		ranks = append(ranks, card.Rank)
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	// bigger groups first, then higher ranks
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	groupRanks := make([]int, len(groups))
	for i, g := range groups {
		groupRanks[i] = g.rank
	}

	flush := isFlush(cards)
	straight := 0
	if len(cards) == handSize && len(groups) == handSize {
		straight = straightHigh(ranks)
	}

	var hand Hand
	tiebreak := groupRanks
	switch {
	case straight > 0 && flush:
		hand = StraightFlush
		tiebreak = []int{straight}
	case groups[0].count == 4:
		hand = FourOfAKind
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count == 2:
		hand = FullHouse
	case flush:
		hand = Flush
	case straight > 0:
		hand = Straight
		tiebreak = []int{straight}
	case groups[0].count == 3:
		hand = ThreeOfAKind
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		hand = TwoPair
	case groups[0].count == 2:
		hand = OnePair
	default:
		hand = HighCard
	}

	return HandRank{
		Hand:     hand,
		Tiebreak: tiebreak,
		Cards:    orderCards(cards, groupRanks, straight),
	}
}

func isFlush(cards []deck.Card) bool {
	if len(cards) != handSize {
		return false
	}

	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// orderCards orders the cards the way the hand reads, i.e., 7,7,7,2,2 or 5,4,3,2,A for the wheel
func orderCards(cards []deck.Card, groupRanks []int, straight int) deck.Hand {
	position := make(map[int]int, len(groupRanks))
	for i, rank := range groupRanks {
		position[rank] = i
	}

	ordered := make(deck.Hand, len(cards))
	copy(ordered, cards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return position[ordered[i].Rank] < position[ordered[j].Rank]
	})

	if straight == 5 && ordered[0].Rank == deck.Ace {
		ordered = append(ordered[1:], ordered[0])
	}

	return ordered
}

// Compare returns 1 if r beats o, -1 if o beats r, and 0 if the hands tie
func (r HandRank) Compare(o HandRank) int {
	if r.Hand != o.Hand {
		if r.Hand > o.Hand {
			return 1
		}

		return -1
	}

	for i := 0; i < len(r.Tiebreak) && i < len(o.Tiebreak); i++ {
		if r.Tiebreak[i] > o.Tiebreak[i] {
			return 1
		} else if r.Tiebreak[i] < o.Tiebreak[i] {
			return -1
		}
	}

	switch {
	case len(r.Tiebreak) > len(o.Tiebreak):
		return 1
	case len(r.Tiebreak) < len(o.Tiebreak):
		return -1
	}

	return 0
}

// Beats returns true if r is strictly better than o
func (r HandRank) Beats(o HandRank) bool {
	return r.Compare(o) > 0
}

// Ties returns true if neither hand beats the other
func (r HandRank) Ties(o HandRank) bool {
	return r.Compare(o) == 0
}

// GetStrength packs the hand into a single integer
// For any two ranks, a.GetStrength() > b.GetStrength() if and only if a beats b
func (r HandRank) GetStrength() int {
	strength := int(r.Hand)
	for i := 0; i < handSize; i++ {
		strength *= strengthBase
		if i < len(r.Tiebreak) {
			strength += r.Tiebreak[i]
		}
	}

	return strength
}

// String describes the hand, i.e., "Full house, 7s full of 2s"
func (r HandRank) String() string {
	if len(r.Tiebreak) == 0 {
		return r.Hand.String()
	}

	first := deck.RankString(r.Tiebreak[0])
	switch r.Hand {
	case StraightFlush:
		if r.Tiebreak[0] == deck.Ace {
			return "Royal flush"
		}

		return fmt.Sprintf("Straight flush, %s high", first)
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %ss", first)
	case FullHouse:
		return fmt.Sprintf("Full house, %ss full of %ss", first, deck.RankString(r.Tiebreak[1]))
	case Flush:
		return fmt.Sprintf("Flush, %s high", first)
	case Straight:
		return fmt.Sprintf("Straight, %s high", first)
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %ss", first)
	case TwoPair:
		return fmt.Sprintf("Two pair, %ss and %ss", first, deck.RankString(r.Tiebreak[1]))
	case OnePair:
		return fmt.Sprintf("Pair of %ss", first)
	}

	kickers := make([]string, len(r.Tiebreak))
	for i, rank := range r.Tiebreak {
		kickers[i] = deck.RankString(rank)
	}

	return fmt.Sprintf("High card, %s", strings.Join(kickers, " "))
}

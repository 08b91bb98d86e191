package handanalyzer

import "holdem-engine/pkg/deck"

// straightWindows are the highest ranks of every possible straight, best first
// The final window (5 high) is the wheel, where the ace plays low
var straightWindows = []int{14, 13, 12, 11, 10, 9, 8, 7, 6, 5}

// straightHigh returns the high card of the best straight the ranks can make, or 0
func straightHigh(ranks []int) int {
	// index 1 is the low ace
	var present [deck.MaxRank + 1]bool
	for _, rank := range ranks {
		present[rank] = true
		if rank == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	for _, high := range straightWindows {
		found := true
		for rank := high; rank > high-5; rank-- {
			if !present[rank] {
				found = false
				break
			}
		}

		if found {
			return high
		}
	}

	return 0
}

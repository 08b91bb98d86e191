package potmanager

import (
	"sort"
)

type ranked struct {
	participant Participant
	strength    int
}

// WinManager groups participants by the strength of their hand, a higher strength wins
type WinManager struct {
	ranked []ranked
}

func NewWinManager() *WinManager {
	return &WinManager{ranked: make([]ranked, 0)}
}

func (w *WinManager) AddParticipant(p Participant, handStrength int) {
	w.ranked = append(w.ranked, ranked{participant: p, strength: handStrength})
}

// GetSortedTiers returns the rankings for PotManager.Divvy()
func (w *WinManager) GetSortedTiers() [][]Participant {
	sorted := make([]ranked, len(w.ranked))
	copy(sorted, w.ranked)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].strength != sorted[j].strength {
			return sorted[i].strength > sorted[j].strength
		}

		return sorted[i].participant.Seat() < sorted[j].participant.Seat()
	})

	tiers := make([][]Participant, 0)
	for i, r := range sorted {
		if i == 0 || r.strength != sorted[i-1].strength {
			tiers = append(tiers, make([]Participant, 0, 1))
		}

		last := len(tiers) - 1
		tiers[last] = append(tiers[last], r.participant)
	}

	return tiers
}
